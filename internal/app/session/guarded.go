package session

import "sync"

// guarded provides thread-safe access to a mutable value. Reads take a
// shared lock and writes are serialized.
type guarded[T any] struct {
	mu  sync.RWMutex
	val T
}

// get returns a copy of the current value under a read lock.
func (g *guarded[T]) get() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.val
}

// update applies fn to the value under a write lock.
func (g *guarded[T]) update(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.val)
}
