package concurrency

import "sync"

// InFlight admits at most one holder per key. Unlike LockManager it never
// blocks: a second caller for a busy key is turned away.
type InFlight struct {
	active sync.Map
}

// NewInFlight creates an empty guard
func NewInFlight() *InFlight {
	return &InFlight{}
}

// TryAcquire marks key busy. It returns false if key is already held.
func (g *InFlight) TryAcquire(key string) bool {
	_, loaded := g.active.LoadOrStore(key, struct{}{})
	return !loaded
}

// Release frees key
func (g *InFlight) Release(key string) {
	g.active.Delete(key)
}

// Active reports whether key is currently held
func (g *InFlight) Active(key string) bool {
	_, ok := g.active.Load(key)
	return ok
}
