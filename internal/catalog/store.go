package catalog

import "sync/atomic"

// Store holds the current catalog. The watcher swaps it on reload while
// the UI and page renderers read it from other goroutines.
type Store struct {
	p atomic.Pointer[Catalog]
}

// NewStore creates a store holding c
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.p.Store(c)
	return s
}

// Current returns the catalog in use
func (s *Store) Current() *Catalog {
	return s.p.Load()
}

// Swap installs c and returns the previous catalog
func (s *Store) Swap(c *Catalog) *Catalog {
	return s.p.Swap(c)
}
