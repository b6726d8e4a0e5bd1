// Package cache implements the memoization cache (spec component C8): a
// normal-form set and a rewritten-form map, each keyed by
// ((hash, otherHash), activeRulesetSet), with three pluggable eviction
// policies.
package cache

import "github.com/elision/elision-sub001/core/atom"

// Key is the memo key: an atom's two-lane structural hash paired with the
// active ruleset set it was rewritten under (spec section 4.8). ActiveKey
// is expected to be a rules.ActiveSet.Key() value; this package doesn't
// import core/rules so it stays usable from anything that can produce a
// comparable set key.
type Key struct {
	Hash       uint64
	OtherHash  uint64
	ActiveKey  string
}

// KeyFor builds a Key for a and the given active-ruleset-set key.
func KeyFor(a atom.Atom, activeSetKey string) Key {
	return Key{Hash: a.Hash(), OtherHash: a.OtherHash(), ActiveKey: activeSetKey}
}

type entry struct {
	Atom  atom.Atom
	Level int
}

// Policy selects one of the three eviction strategies of spec section 4.8.
type Policy int

const (
	FIFO Policy = iota
	LRU
	LFU
)

// Config configures the cache (spec section 4.8's "Configurable
// properties" exposed to the Executor).
type Config struct {
	Enabled       bool
	MaxSize       int // per store; default 4096
	Policy        Policy
	MaxCacheDepth int // -1 for unbounded
}

// DefaultConfig mirrors the spec's stated defaults.
func DefaultConfig() Config {
	return Config{Enabled: true, MaxSize: 4096, Policy: FIFO, MaxCacheDepth: -1}
}

// Cache is the memoization cache: two independently-mutexed stores
// (normal, cache), each guarded so get/put acquire only the store they
// touch (spec section 4.8's Concurrency paragraph).
type Cache struct {
	cfg    Config
	normal *boundedStore[struct{}]
	cached *boundedStore[entry]
}

// New builds a Cache from cfg.
func New(cfg Config) *Cache {
	return &Cache{
		cfg:    cfg,
		normal: newBoundedStore[struct{}](cfg.Policy, cfg.MaxSize),
		cached: newBoundedStore[entry](cfg.Policy, cfg.MaxSize),
	}
}

// Lookup is Get's result: Skip means the atom is never queried or stored
// (a literal, a variable, a metavariable, or an atom deeper than
// MaxCacheDepth — spec section 4.8's "atoms deeper than this are neither
// queried nor stored" plus 4.6's "a variable looks itself up in binds",
// which the cache, keyed independent of binds, cannot answer); Hit means
// Atom is the accepted (possibly unchanged) result.
type Lookup struct {
	Atom atom.Atom
	Hit  bool
	Skip bool
}

// Get implements get(atom, rulesets) (spec section 4.8).
func (c *Cache) Get(a atom.Atom, activeSetKey string) Lookup {
	if !c.cfg.Enabled {
		return Lookup{Skip: true, Atom: a}
	}
	switch a.(type) {
	case *atom.Literal, *atom.Variable, *atom.MetaVariable:
		return Lookup{Skip: true, Atom: a}
	}
	if c.cfg.MaxCacheDepth >= 0 && a.Depth() > c.cfg.MaxCacheDepth {
		return Lookup{Skip: true, Atom: a}
	}

	key := KeyFor(a, activeSetKey)
	if _, ok := c.normal.get(key); ok {
		return Lookup{Hit: true, Atom: a}
	}
	if e, ok := c.cached.get(key); ok {
		return Lookup{Hit: true, Atom: e.Atom}
	}
	return Lookup{}
}

// Put implements put(atom, rulesets, value, level) (spec section 4.8):
// reference-equal atom/value goes into the normal set; otherwise value is
// recorded in the cache with level clamped to [0, MaxCacheDepth-1] (when
// MaxCacheDepth is bounded).
func (c *Cache) Put(a, value atom.Atom, level int, activeSetKey string) {
	if !c.cfg.Enabled {
		return
	}
	switch a.(type) {
	case *atom.Literal, *atom.Variable, *atom.MetaVariable:
		return
	}
	if c.cfg.MaxCacheDepth >= 0 && a.Depth() > c.cfg.MaxCacheDepth {
		return
	}

	key := KeyFor(a, activeSetKey)
	if a == value {
		c.normal.put(key, struct{}{})
		return
	}
	if c.cfg.MaxCacheDepth >= 0 {
		if level < 0 {
			level = 0
		}
		if level > c.cfg.MaxCacheDepth-1 {
			level = c.cfg.MaxCacheDepth - 1
		}
	} else if level < 0 {
		level = 0
	}
	c.cached.put(key, entry{Atom: value, Level: level})
}

// Clear resets both stores and their hit/miss statistics.
func (c *Cache) Clear() {
	c.normal.clear()
	c.cached.clear()
}

// CacheEntry is one rewritten-form record, as exposed to an external
// persistent-cache-file collaborator (spec section 6; this package only
// serializes the key/value pair, it never reads or writes a file itself).
type CacheEntry struct {
	Key   Key
	Atom  atom.Atom
	Level int
}

// Entries snapshots the cache store (not the normal set, which carries no
// value beyond "already in normal form").
func (c *Cache) Entries() []CacheEntry {
	snap := c.cached.snapshot()
	out := make([]CacheEntry, 0, len(snap))
	for k, e := range snap {
		out = append(out, CacheEntry{Key: k, Atom: e.Atom, Level: e.Level})
	}
	return out
}

// Load restores previously snapshotted cache-store entries, going through
// the normal eviction-aware put path.
func (c *Cache) Load(entries []CacheEntry) {
	for _, e := range entries {
		c.cached.put(e.Key, entry{Atom: e.Atom, Level: e.Level})
	}
}

// Stats reports cumulative hit/miss counts across both stores.
type Stats struct {
	NormalHits, NormalMisses int
	CacheHits, CacheMisses   int
}

// Stats returns the cache's cumulative hit/miss counters.
func (c *Cache) Stats() Stats {
	nh, nm := c.normal.stats()
	ch, cm := c.cached.stats()
	return Stats{NormalHits: nh, NormalMisses: nm, CacheHits: ch, CacheMisses: cm}
}
