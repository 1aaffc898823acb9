package lsmcore

import "sync"

// Memtable is the two-tier in-memory write path: a mutable active index
// that absorbs writes, and a list of frozen (read-only) indexes awaiting
// flush to an SSTable by an external collaborator. Active and frozen
// tiers carry independent locks; wherever both are needed, the active
// lock is always acquired first to keep lock order consistent across
// goroutines.
type Memtable struct {
	activeMu sync.RWMutex
	active   *OrderedIndex

	frozenMu       sync.RWMutex
	frozen         []*OrderedIndex // index 0 is the most recently frozen
	nextTableIndex int

	freezeThreshold int64
}

// NewMemtable creates an empty memtable that freezes its active tier once
// its SizeBytes exceeds cfg.PerMemtableSize.
func NewMemtable(cfg Config) *Memtable {
	return &Memtable{
		active:          NewOrderedIndex(),
		freezeThreshold: cfg.PerMemtableSize,
	}
}

// Put writes (key, val) as of trxID, freezing the active tier afterward if
// it has outgrown its threshold. A zero-length val records a tombstone.
func (m *Memtable) Put(key, val []byte, trxID uint64) {
	m.activeMu.Lock()
	m.active.Put(key, val, trxID)
	overflowing := m.freezeThreshold > 0 && int64(m.active.SizeBytes()) > m.freezeThreshold
	m.activeMu.Unlock()

	if overflowing {
		m.freeze()
	}
}

// Remove logically deletes key as of trxID by writing a tombstone.
func (m *Memtable) Remove(key []byte, trxID uint64) {
	m.Put(key, nil, trxID)
}

// freeze publishes the current active index as the newest frozen table
// and installs a fresh empty active index. Lock order is active then
// frozen, matching every other path that needs both.
func (m *Memtable) freeze() {
	m.activeMu.Lock()
	defer m.activeMu.Unlock()
	m.frozenMu.Lock()
	defer m.frozenMu.Unlock()

	if m.active.SizeBytes() == 0 {
		return
	}
	sealed := m.active
	m.active = NewOrderedIndex()
	m.frozen = append([]*OrderedIndex{sealed}, m.frozen...)
	m.nextTableIndex++
}

// Flush forces the active tier to freeze even if under threshold. Used by
// callers that need a consistent on-demand checkpoint.
func (m *Memtable) Flush() {
	m.activeMu.Lock()
	empty := m.active.SizeBytes() == 0
	m.activeMu.Unlock()
	if empty {
		return
	}
	m.freeze()
}

// Get returns the value visible at snapshot trxID, checking the active
// tier first and then each frozen table from newest to oldest, stopping
// at the first tier holding a version of key visible at trxID. found is
// false when no tier holds such a version. A tombstone is still
// found=true, with val==nil: the newest visible version of key is its
// winning version, so a caller must not keep falling through to an older
// tier's stale live value just because the winning version is a delete.
func (m *Memtable) Get(key []byte, trxID uint64) (val []byte, found bool) {
	m.activeMu.RLock()
	it := m.active.Get(key, trxID)
	if it.IsValid() {
		v := it.Val()
		m.activeMu.RUnlock()
		if len(v) == 0 {
			return nil, true
		}
		return v, true
	}
	m.activeMu.RUnlock()

	m.frozenMu.RLock()
	defer m.frozenMu.RUnlock()
	for _, idx := range m.frozen {
		it := idx.Get(key, trxID)
		if !it.IsValid() {
			continue
		}
		v := it.Val()
		if len(v) == 0 {
			return nil, true
		}
		return v, true
	}
	return nil, false
}

// GetBatch resolves many keys at once under a single snapshot trxID,
// returning only the keys that resolved to a live (non-tombstone) value.
func (m *Memtable) GetBatch(keys [][]byte, trxID uint64) map[string][]byte {
	out := make(map[string][]byte, len(keys))
	for _, key := range keys {
		if val, ok := m.Get(key, trxID); ok && len(val) != 0 {
			out[string(key)] = val
		}
	}
	return out
}

// SizeBytes sums the active tier and every frozen tier.
func (m *Memtable) SizeBytes() int64 {
	m.activeMu.RLock()
	total := int64(m.active.SizeBytes())
	m.activeMu.RUnlock()

	m.frozenMu.RLock()
	for _, idx := range m.frozen {
		total += int64(idx.SizeBytes())
	}
	m.frozenMu.RUnlock()
	return total
}

// FrozenTables returns a snapshot of the frozen tier list, newest first,
// for an external flush loop to drain to SSTables.
func (m *Memtable) FrozenTables() []*OrderedIndex {
	m.frozenMu.RLock()
	defer m.frozenMu.RUnlock()
	out := make([]*OrderedIndex, len(m.frozen))
	copy(out, m.frozen)
	return out
}

// RemoveFrozen drops a frozen table once the caller has durably flushed
// it, e.g. to an SSTable. It is a no-op if t is not present.
func (m *Memtable) RemoveFrozen(t *OrderedIndex) {
	m.frozenMu.Lock()
	defer m.frozenMu.Unlock()
	for i, idx := range m.frozen {
		if idx == t {
			m.frozen = append(m.frozen[:i], m.frozen[i+1:]...)
			return
		}
	}
}

// NewMergedIterator returns a k-way merge over the active tier and every
// frozen tier, under snapshot trxID, newest version of each key first and
// tombstones suppressed.
func (m *Memtable) NewMergedIterator(trxID uint64) Iterator {
	m.activeMu.RLock()
	activeIt := m.active.Begin()
	m.activeMu.RUnlock()

	m.frozenMu.RLock()
	frozenIts := make([]*SkipListIterator, len(m.frozen))
	for i, idx := range m.frozen {
		frozenIts[i] = idx.Begin()
	}
	m.frozenMu.RUnlock()

	items := make([]*mergeItem, 0, 1+len(frozenIts))
	if activeIt.IsValid() {
		items = append(items, &mergeItem{it: activeIt, level: 0, tableIndex: 0})
	}
	for i, it := range frozenIts {
		if it.IsValid() {
			items = append(items, &mergeItem{it: it, level: 1, tableIndex: i})
		}
	}
	return newMemtableIterator(items, trxID)
}
