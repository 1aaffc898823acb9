package lsmcore

import (
	"github.com/BurntSushi/toml"
)

// Config holds the handful of sizing parameters the core consumes from
// configuration. Nothing else in the system reads this struct: SSTable
// layout, compaction scheduling, and the WAL are external collaborators
// and configure themselves separately.
type Config struct {
	// SumMemtableSize is the total memtable budget in bytes.
	SumMemtableSize int64 `toml:"LSM_SUM_MEMTABLE_SIZE"`
	// PerMemtableSize is the freeze threshold, in bytes, for the active
	// index. Memtable.Put freezes once SizeBytes() exceeds this.
	PerMemtableSize int64 `toml:"LSM_PER_MEMTABLE_SIZE"`
	// SstLevelRatio is the size ratio between SSTable levels, consumed by
	// the (external) compaction scheduler only.
	SstLevelRatio int `toml:"LSM_SST_LEVEL_RATIO"`
	// BlockSize is the default Block capacity in bytes.
	BlockSize int `toml:"LSM_BLOCK_SIZE"`
	// BlockCacheSize is the BlockCache capacity in items.
	BlockCacheSize int `toml:"LSM_BLOCK_CACHE_SIZE"`
	// BlockCacheLRUK is K for the BlockCache's LRU-K policy.
	BlockCacheLRUK int `toml:"LSM_BLOCK_CACHE_LRUK"`
}

// DefaultConfig returns the engine's built-in sizing defaults.
func DefaultConfig() Config {
	return Config{
		SumMemtableSize: 64 * 1024 * 1024,
		PerMemtableSize: 4 * 1024 * 1024,
		SstLevelRatio:   4,
		BlockSize:       32 * 1024,
		BlockCacheSize:  1024,
		BlockCacheLRUK:  8,
	}
}

// tomlDoc is the on-disk shape, nesting the sizing fields under an "lsmt"
// table.
type tomlDoc struct {
	LSMT Config `toml:"lsmt"`
}

// LoadConfigFile reads the sizing parameters from a TOML file. Callers
// that want a fallback to defaults on a missing or unparsable file should
// inspect the returned error and substitute DefaultConfig() themselves.
func LoadConfigFile(path string) (Config, error) {
	var doc tomlDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return Config{}, err
	}
	return doc.LSMT, nil
}
