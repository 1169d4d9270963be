package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCacheSetGet(t *testing.T) {
	cache := NewTTLCache()

	_, ok := cache.Get("scene:cafe-1:emma-bookworm")
	assert.False(t, ok)

	cache.Set("scene:cafe-1:emma-bookworm", "a cozy corner table", time.Minute)
	value, ok := cache.Get("scene:cafe-1:emma-bookworm")
	assert.True(t, ok)
	assert.Equal(t, "a cozy corner table", value)

	// Overwrites replace the entry.
	cache.Set("scene:cafe-1:emma-bookworm", "updated", time.Minute)
	value, _ = cache.Get("scene:cafe-1:emma-bookworm")
	assert.Equal(t, "updated", value)
}

func TestTTLCacheExpiry(t *testing.T) {
	cache := NewTTLCache()

	cache.Set("tips:cafe-1:emma-bookworm", "expired soon", -time.Second)
	_, ok := cache.Get("tips:cafe-1:emma-bookworm")
	assert.False(t, ok)
}
