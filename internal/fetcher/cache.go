package fetcher

import "sync"

// entryCache remembers successful answers about repository entries. Probes
// and reads are kept apart: a cached probe says nothing about a read.
type entryCache struct {
	mu     sync.RWMutex
	exists map[string]bool
	files  map[string][]byte
}

func newEntryCache() *entryCache {
	return &entryCache{
		exists: make(map[string]bool),
		files:  make(map[string][]byte),
	}
}

func (c *entryCache) probe(name string) (present, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	present, ok = c.exists[name]
	return present, ok
}

func (c *entryCache) storeProbe(name string, present bool) {
	c.mu.Lock()
	c.exists[name] = present
	c.mu.Unlock()
}

// file returns a copy of the cached contents of name.
func (c *entryCache) file(name string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.files[name]
	if !ok {
		return nil, false
	}
	return cloneBytes(b), true
}

func (c *entryCache) storeFile(name string, b []byte) {
	c.mu.Lock()
	c.files[name] = cloneBytes(b)
	c.mu.Unlock()
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
