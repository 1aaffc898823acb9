package lsmcore

import "container/heap"

// mergeItem is one live source feeding a MemtableIterator: a cursor into
// either the active table (level 0) or a frozen table (level 1, ordered
// by tableIndex, newest first).
type mergeItem struct {
	it         *SkipListIterator
	level      int
	tableIndex int
}

// mergeLess implements the k-way merge order: ascending key, then
// descending trx_id so the newest version of a key surfaces first, then
// level and tableIndex purely to make the order deterministic on exact
// ties. Every comparison is chained through all four keys so no distinct
// pair of items is ever reported equal.
func mergeLess(a, b *mergeItem) bool {
	if c := compareKeys(a.it.Key(), b.it.Key()); c != 0 {
		return c < 0
	}
	if a.it.TrxID() != b.it.TrxID() {
		return a.it.TrxID() > b.it.TrxID()
	}
	if a.level != b.level {
		return a.level < b.level
	}
	return a.tableIndex < b.tableIndex
}

// mergeHeap is a container/heap min-heap of mergeItem ordered by
// mergeLess.
type mergeHeap []*mergeItem

func (h mergeHeap) Len() int            { return len(h) }
func (h mergeHeap) Less(i, j int) bool  { return mergeLess(h[i], h[j]) }
func (h mergeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(*mergeItem)) }
func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MemtableIterator is the k-way merge over an active table and its frozen
// predecessors, under an implicit snapshot trx_id. Tombstones and
// versions newer than the snapshot are skipped transparently; only the
// newest visible version of each key is ever surfaced.
type MemtableIterator struct {
	h             mergeHeap
	snapshotTrxID uint64
	curKey        []byte
	curVal        []byte
	valid         bool
}

var _ Iterator = (*MemtableIterator)(nil)

func newMemtableIterator(items []*mergeItem, snapshotTrxID uint64) *MemtableIterator {
	it := &MemtableIterator{snapshotTrxID: snapshotTrxID}
	it.h = make(mergeHeap, 0, len(items))
	for _, item := range items {
		it.h = append(it.h, item)
	}
	heap.Init(&it.h)
	it.advance()
	return it
}

// advance positions the iterator at the next visible (key, val) pair,
// skipping tombstones and superseded/invisible versions.
func (it *MemtableIterator) advance() {
	for it.h.Len() > 0 {
		groupKey := append([]byte(nil), it.h[0].it.Key()...)

		var chosenVal []byte
		haveChosen := false

		for it.h.Len() > 0 && compareKeys(it.h[0].it.Key(), groupKey) == 0 {
			item := heap.Pop(&it.h).(*mergeItem)
			val, trxID := item.it.Val(), item.it.TrxID()
			if !haveChosen && (it.snapshotTrxID == 0 || trxID <= it.snapshotTrxID) {
				chosenVal = append([]byte(nil), val...)
				haveChosen = true
			}
			item.it.Advance()
			if item.it.IsValid() {
				heap.Push(&it.h, item)
			}
		}

		if !haveChosen {
			continue
		}
		if len(chosenVal) == 0 {
			continue // tombstone: key was deleted as of this snapshot
		}
		it.curKey = groupKey
		it.curVal = chosenVal
		it.valid = true
		return
	}
	it.valid = false
	it.curKey = nil
	it.curVal = nil
}

// Advance moves to the next visible key.
func (it *MemtableIterator) Advance() {
	if !it.valid {
		return
	}
	it.advance()
}

// Key returns the current key. Callers must check IsValid first.
func (it *MemtableIterator) Key() []byte {
	return it.curKey
}

// Val returns the current value. Callers must check IsValid first.
func (it *MemtableIterator) Val() []byte {
	return it.curVal
}

// IsEnd reports whether the merge has been exhausted.
func (it *MemtableIterator) IsEnd() bool {
	return !it.valid
}

// IsValid reports whether Key/Val may be safely read.
func (it *MemtableIterator) IsValid() bool {
	return it.valid
}

// Kind identifies this as a memtable merge iterator.
func (it *MemtableIterator) Kind() IteratorKind {
	return KindMemtable
}
