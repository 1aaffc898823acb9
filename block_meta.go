package lsmcore

import "encoding/binary"

// BlockMeta records one block's placement and key range within an
// SSTable: its byte offset, and the first and last keys it holds. A
// BlockMeta vector lets a reader locate the right block for a key without
// decoding every block on disk.
type BlockMeta struct {
	Offset   uint32
	FirstKey []byte
	LastKey  []byte
}

// EncodeBlockMetas serializes a slice of BlockMeta to its on-disk form: a
// u32 entry count header, then each entry as offset + length-prefixed
// first/last key, then a trailing CRC32C checksum over the header and
// entries.
func EncodeBlockMetas(metas []BlockMeta) []byte {
	body := make([]byte, 0, 64*len(metas)+4)

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(metas)))
	body = append(body, countBuf[:]...)

	for _, m := range metas {
		var offBuf [4]byte
		binary.LittleEndian.PutUint32(offBuf[:], m.Offset)
		body = append(body, offBuf[:]...)

		var fLenBuf [2]byte
		binary.LittleEndian.PutUint16(fLenBuf[:], uint16(len(m.FirstKey)))
		body = append(body, fLenBuf[:]...)
		body = append(body, m.FirstKey...)

		var lLenBuf [2]byte
		binary.LittleEndian.PutUint16(lLenBuf[:], uint16(len(m.LastKey)))
		body = append(body, lLenBuf[:]...)
		body = append(body, m.LastKey...)
	}

	out := make([]byte, len(body)+4)
	copy(out, body)
	binary.LittleEndian.PutUint32(out[len(body):], checksum(body))
	return out
}

// metaTrailerSize is the minimum size of an encoded BlockMeta vector: a
// u32 entry count header plus a u32 checksum, with zero entries.
const metaTrailerSize = 4 + 4

// DecodeBlockMetas parses a BlockMeta vector previously produced by
// EncodeBlockMetas, verifying its checksum.
func DecodeBlockMetas(buf []byte) ([]BlockMeta, error) {
	if len(buf) < metaTrailerSize {
		return nil, ErrMetaDecode
	}
	body := buf[:len(buf)-4]
	wantSum := binary.LittleEndian.Uint32(buf[len(buf)-4:])
	if checksum(body) != wantSum {
		return nil, ErrMetaDecode
	}
	count := int(binary.LittleEndian.Uint32(body[:4]))
	body = body[4:]

	metas := make([]BlockMeta, 0, count)
	p := 0
	for i := 0; i < count; i++ {
		if p+4+2 > len(body) {
			return nil, ErrMetaDecode
		}
		offset := binary.LittleEndian.Uint32(body[p : p+4])
		p += 4
		fLen := int(binary.LittleEndian.Uint16(body[p : p+2]))
		p += 2
		if p+fLen+2 > len(body) {
			return nil, ErrMetaDecode
		}
		firstKey := body[p : p+fLen]
		p += fLen
		lLen := int(binary.LittleEndian.Uint16(body[p : p+2]))
		p += 2
		if p+lLen > len(body) {
			return nil, ErrMetaDecode
		}
		lastKey := body[p : p+lLen]
		p += lLen

		metas = append(metas, BlockMeta{Offset: offset, FirstKey: firstKey, LastKey: lastKey})
	}
	if p != len(body) {
		return nil, ErrMetaDecode
	}
	return metas, nil
}
