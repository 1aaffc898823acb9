package lsmcore

import "errors"

// Error kinds returned across the package. Comparing iterators of
// different concrete kinds is deliberately not one of these: it resolves
// to "not equal", never an error (see Equal in iterator.go).
var (
	// ErrBlockDecode covers a DecodeBlock buffer too small to hold its own
	// trailer, an entry that would extend past the buffer, or a checksum
	// mismatch.
	ErrBlockDecode = errors.New("lsmcore: block decode error")

	// ErrMetaDecode covers a block-meta buffer shorter than its header or a
	// checksum mismatch.
	ErrMetaDecode = errors.New("lsmcore: block meta decode error")

	// ErrIndexOutOfRange covers offsets/index access beyond the live array.
	ErrIndexOutOfRange = errors.New("lsmcore: index out of range")

	// ErrIteratorOutOfRange covers dereferencing an end or invalid iterator.
	ErrIteratorOutOfRange = errors.New("lsmcore: iterator out of range")
)
