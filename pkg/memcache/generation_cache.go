package memcache

import (
	"sync"
	"time"
)

// GenerationCache holds recently generated scene descriptions and coaching
// tips keyed by scenario+persona. Both are deterministic for a given
// scenario, so a short TTL saves an upstream call per page view.
type GenerationCache interface {
	Set(key string, value interface{}, ttl time.Duration)
	Get(key string) (interface{}, bool)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

type TTLCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewTTLCache() *TTLCache {
	return &TTLCache{
		data: make(map[string]entry),
	}
}

func (s *TTLCache) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	// Opportunistic cleanup once the map gets large.
	if len(s.data) > 1000 {
		for k, e := range s.data {
			if time.Now().After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}

func (s *TTLCache) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}
