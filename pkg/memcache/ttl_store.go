// pkg/memcache/ttl_store.go
package mem

import (
	"sync"
	"time"
)

// Store is a small in-process cache with per-entry expiry.
type Store[V any] interface {
	// Set stores v for ttl. A non-positive ttl stores nothing.
	Set(key string, v V, ttl time.Duration)

	// Get returns the value if present and not expired.
	Get(key string) (V, bool)

	// Purge drops every entry.
	Purge()
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
	now  func() time.Time
}

func NewTTLStore[V any]() *TTLStore[V] {
	return &TTLStore[V]{
		data: make(map[string]entry[V]),
		now:  time.Now,
	}
}

func (s *TTLStore[V]) Set(key string, v V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     v,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		if cur, still := s.data[key]; still && !cur.expiresAt.After(s.now()) {
			delete(s.data, key) // cleanup expired
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[V]) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.data)
}

func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
