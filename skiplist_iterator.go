package lsmcore

// SkipListIterator walks an OrderedIndex at level 0, in ascending
// VersionedKey order. A zero-value SkipListIterator is already at the
// end.
type SkipListIterator struct {
	node *skipNode
}

var _ Iterator = (*SkipListIterator)(nil)

// Advance moves to the next node at level 0. Advancing an end iterator is
// a no-op.
func (it *SkipListIterator) Advance() {
	if it.node == nil {
		return
	}
	it.node = it.node.forward[0]
}

// Key returns the current node's key. Callers must check IsValid first.
func (it *SkipListIterator) Key() []byte {
	return it.node.key
}

// Val returns the current node's value. Callers must check IsValid first.
func (it *SkipListIterator) Val() []byte {
	return it.node.val
}

// TrxID returns the current node's transaction id.
func (it *SkipListIterator) TrxID() uint64 {
	return it.node.trxID
}

// IsEnd reports whether the iterator has run off the list.
func (it *SkipListIterator) IsEnd() bool {
	return it.node == nil
}

// IsValid reports whether Key/Val/TrxID may be safely read.
func (it *SkipListIterator) IsValid() bool {
	return it.node != nil
}

// Kind identifies this as a skip list iterator.
func (it *SkipListIterator) Kind() IteratorKind {
	return KindSkipList
}
