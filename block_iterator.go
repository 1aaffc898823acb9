package lsmcore

// BlockIterator walks a Block over a contiguous [begin, end) index range
// in ascending VersionedKey order.
type BlockIterator struct {
	block *Block
	idx   int
	end   int
}

var _ Iterator = (*BlockIterator)(nil)

// NewBlockIterator returns an iterator over b's full entry range.
func NewBlockIterator(b *Block) *BlockIterator {
	return &BlockIterator{block: b, idx: 0, end: b.NumEntries()}
}

// NewBlockRangeIterator returns an iterator over [begin, end) of b, as
// produced by GetMonotonyPredicateIters or ItersPrefix.
func NewBlockRangeIterator(b *Block, begin, end int) *BlockIterator {
	return &BlockIterator{block: b, idx: begin, end: end}
}

// Advance moves to the next index. Advancing past end is a no-op.
func (it *BlockIterator) Advance() {
	if it.idx < it.end {
		it.idx++
	}
}

// Key returns the key at the current position.
func (it *BlockIterator) Key() []byte {
	key, _, _ := it.block.entryAt(it.idx)
	return key
}

// Val returns the value at the current position.
func (it *BlockIterator) Val() []byte {
	_, val, _ := it.block.entryAt(it.idx)
	return val
}

// TrxID returns the trx_id at the current position.
func (it *BlockIterator) TrxID() uint64 {
	_, _, trxID := it.block.entryAt(it.idx)
	return trxID
}

// IsEnd reports whether the cursor has reached the range's end. This uses
// strict equality against the end bound, not a reassignment.
func (it *BlockIterator) IsEnd() bool {
	return it.idx == it.end
}

// IsValid reports whether the cursor may be safely dereferenced.
func (it *BlockIterator) IsValid() bool {
	return it.idx >= 0 && it.idx < it.end
}

// Kind identifies this as a block iterator.
func (it *BlockIterator) Kind() IteratorKind {
	return KindBlock
}
