package primitives

import "sync"

// Context is an active object's extended state: a small typed key-value
// store for the data a state tree's handlers need beyond the current
// state itself (counters, accumulated payloads, peer references). It is
// guarded by an RWMutex even though spec.md §5 confines dispatch to one
// goroutine, because an AO's Context is also a natural place for a
// ChannelBridge running on another goroutine to stash data ahead of
// posting an event — see extensibility.ChannelBridge.
type Context struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{data: make(map[string]any)}
}

// Set stores value under key.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

// Get returns the value stored under key, if any.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

// Delete removes key.
func (c *Context) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}
