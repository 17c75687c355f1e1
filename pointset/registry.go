package pointset

import "sync"

// ID is an opaque identifier for a PointSet, resolved by the upstream
// destination-pointset loader.
type ID string

// Registry is a concurrent, eviction-free map from ID to PointSet, sized by
// process lifetime. Unlike linkage.Cache, a Registry never discards
// entries; callers that need bounded memory must not register unboundedly
// many distinct ids.
type Registry struct {
	m sync.Map // ID -> PointSet
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register stores ps under id, overwriting any previous value.
func (r *Registry) Register(id ID, ps PointSet) {
	r.m.Store(id, ps)
}

// Get returns the PointSet registered under id, if any.
func (r *Registry) Get(id ID) (PointSet, bool) {
	v, ok := r.m.Load(id)
	if !ok {
		return nil, false
	}

	return v.(PointSet), true
}

// Delete removes id from the registry, if present. Exposed for test
// teardown and explicit cache invalidation; the steady-state path never
// evicts on its own.
func (r *Registry) Delete(id ID) {
	r.m.Delete(id)
}
