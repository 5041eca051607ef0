package Maps

import "sync"

// Synced guards a LinearProbe with a single RWMutex. Lookups share the lock as
// they don't touch the statistics.
type Synced[V any] struct {
	mu sync.RWMutex
	m  *LinearProbe[V]
}

// NewSynced takes the same arguments as New.
func NewSynced[V any](expected uint, opts ...Option) *Synced[V] {
	return &Synced[V]{m: New[V](expected, opts...)}
}

func (u *Synced[V]) Set(key string, v V) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.m.Set(key, v)
}

func (u *Synced[V]) Delete(key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.m.Delete(key)
}

func (u *Synced[V]) Get(key string) (V, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.m.Get(key)
}

func (u *Synced[V]) Has(key string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.m.Has(key)
}

func (u *Synced[V]) Keys() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.m.Keys()
}

func (u *Synced[V]) Values() []V {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.m.Values()
}

func (u *Synced[V]) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.m.Size()
}

func (u *Synced[V]) Statistics() Statistics {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.m.Statistics()
}
