package grid

import "sync"

// StoreID is an opaque identifier for a resident Grid, resolved by
// whatever upstream loader fetched its bytes from the object store.
type StoreID string

// Store is a concurrent, eviction-free map from StoreID to *Grid, the same
// shape as pointset.Registry's sync.Map-backed identity registry. It never
// fetches or decodes bytes itself — that is the caller's job, via ReadFrom
// or ReadGzip upstream of Put — it only indexes grids already resident in
// memory so accessibility.WorkerContext has one place to look them up by
// id instead of threading *Grid values through every call.
type Store struct {
	m sync.Map // StoreID -> *Grid
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Put stores g under id, overwriting any previous value.
func (s *Store) Put(id StoreID, g *Grid) {
	s.m.Store(id, g)
}

// Get returns the Grid stored under id, if any.
func (s *Store) Get(id StoreID) (*Grid, bool) {
	v, ok := s.m.Load(id)
	if !ok {
		return nil, false
	}

	return v.(*Grid), true
}

// Delete removes id from the store, if present.
func (s *Store) Delete(id StoreID) {
	s.m.Delete(id)
}
