package server

import (
	"bytes"
	"sync"
)

// responseCache memoizes serialized answers. The network never changes after
// startup, so entries never go stale; the map is reset when it reaches its limit.
type responseCache struct {
	mu      sync.RWMutex
	limit   int
	entries map[string]cachedResponse
}

type cachedResponse struct {
	status int
	body   []byte
}

func newResponseCache(limit int) *responseCache {
	return &responseCache{limit: limit, entries: map[string]cachedResponse{}}
}

func memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte(0)
		}
		b.WriteString(a)
	}
	return b.String()
}

func (c *responseCache) get(key string) (cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[key]
	return r, ok
}

func (c *responseCache) put(key string, r cachedResponse) {
	if c.limit <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.limit {
		c.entries = make(map[string]cachedResponse, c.limit)
	}
	c.entries[key] = r
}

func (c *responseCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
