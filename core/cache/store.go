package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// boundedStore is one memo store (normal or cache), generic over the value
// type (struct{} for the normal set, entry for the cache map) so both
// stores share eviction-policy plumbing.
type boundedStore[V any] struct {
	mu     sync.Mutex
	policy Policy
	max    int

	// FIFO/LFU backing.
	data     map[Key]V
	order    []Key       // FIFO: insertion order
	lfuCount map[Key]int // LFU: cumulative access count

	// LRU backing: hashicorp/golang-lru already implements "evict the
	// coldest entries first" well enough that wrapping it is more faithful
	// to an idiomatic Go LRU than hand-rolling the counter sweep spec
	// section 4.8 describes.
	lru *lru.Cache[Key, V]

	hits, misses int
}

func newBoundedStore[V any](policy Policy, max int) *boundedStore[V] {
	s := &boundedStore[V]{policy: policy, max: max}
	if max <= 0 {
		max = 1
	}
	switch policy {
	case LRU:
		c, _ := lru.New[Key, V](max)
		s.lru = c
	default:
		s.data = make(map[Key]V)
		if policy == LFU {
			s.lfuCount = make(map[Key]int)
		}
	}
	return s
}

func (s *boundedStore[V]) get(k Key) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy == LRU {
		v, ok := s.lru.Get(k)
		s.recordLocked(ok)
		return v, ok
	}

	v, ok := s.data[k]
	if ok && s.policy == LFU {
		s.lfuCount[k]++
	}
	s.recordLocked(ok)
	return v, ok
}

func (s *boundedStore[V]) recordLocked(hit bool) {
	if hit {
		s.hits++
	} else {
		s.misses++
	}
}

func (s *boundedStore[V]) put(k Key, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy == LRU {
		s.lru.Add(k, v)
		return
	}

	if _, exists := s.data[k]; !exists {
		s.order = append(s.order, k)
	}
	s.data[k] = v
	if s.policy == LFU {
		if _, ok := s.lfuCount[k]; !ok {
			s.lfuCount[k] = 0
		}
	}
	if len(s.data) > s.max {
		s.evictLocked()
	}
}

// evictLocked implements the FIFO and LFU eviction policies of spec
// section 4.8 (LRU eviction is delegated to the backing lru.Cache).
func (s *boundedStore[V]) evictLocked() {
	switch s.policy {
	case FIFO:
		half := len(s.order) / 2
		if half == 0 {
			half = 1
		}
		for _, k := range s.order[:half] {
			delete(s.data, k)
		}
		s.order = append([]Key(nil), s.order[half:]...)
	case LFU:
		min := -1
		for _, c := range s.lfuCount {
			if min == -1 || c < min {
				min = c
			}
		}
		for k, c := range s.lfuCount {
			if c == min {
				delete(s.data, k)
				delete(s.lfuCount, k)
			}
		}
		for k := range s.lfuCount {
			s.lfuCount[k] = 0
		}
	}
}

func (s *boundedStore[V]) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policy == LRU {
		s.lru.Purge()
	} else {
		s.data = make(map[Key]V)
		s.order = nil
		if s.policy == LFU {
			s.lfuCount = make(map[Key]int)
		}
	}
	s.hits, s.misses = 0, 0
}

func (s *boundedStore[V]) stats() (hits, misses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, s.misses
}

// snapshot copies every key/value currently held, for Cache.Entries (the
// persistent-cache-file collaborator's only touch point into this package,
// per spec section 6's "core interacts only via key serialization").
func (s *boundedStore[V]) snapshot() map[Key]V {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policy == LRU {
		out := make(map[Key]V, len(s.lru.Keys()))
		for _, k := range s.lru.Keys() {
			if v, ok := s.lru.Peek(k); ok {
				out[k] = v
			}
		}
		return out
	}
	out := make(map[Key]V, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
