package linkage

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the bounded cache's default entry count, sized so the
// working set of one analysis (origin network plus a handful of cropped
// sub-grids) fits without forcing a rebuild mid-run.
const DefaultCapacity = 9

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithCapacity overrides DefaultCapacity for the bounded LRU map.
func WithCapacity(capacity int) Option {
	return func(c *Cache) { c.capacity = capacity }
}

// WithLogger installs the *log.Logger used for eviction notices. The
// default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// WithScenarioRegistry installs a pre-populated ScenarioRegistry; by
// default a Cache owns a fresh, empty one.
func WithScenarioRegistry(reg *ScenarioRegistry) Option {
	return func(c *Cache) { c.scenarios = reg }
}

// Cache is the bounded+unevictable linkage store: get-or-build with
// per-key mutual exclusion, backed by a Builder that knows how to actually
// compute a Linkage from the routing engine.
type Cache struct {
	capacity int
	bounded  *lru.Cache[Key, *Linkage]

	unevictMu   sync.RWMutex
	unevictable map[Key]*Linkage

	group     singleflight.Group
	builder   Builder
	scenarios *ScenarioRegistry
	logger    *log.Logger
}

// NewCache constructs a Cache around builder, which supplies the actual
// Linkage computation (the routing engine's side of the contract).
func NewCache(builder Builder, opts ...Option) (*Cache, error) {
	if builder == nil {
		return nil, newBadConfig("linkage.NewCache", errNilBuilder)
	}

	c := &Cache{
		capacity:    DefaultCapacity,
		unevictable: make(map[Key]*Linkage),
		builder:     builder,
		scenarios:   NewScenarioRegistry(),
		logger:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.capacity <= 0 {
		return nil, newBadConfig("linkage.NewCache", errNonPositiveCapacity)
	}

	bounded, err := lru.NewWithEvict(c.capacity, func(key Key, value *Linkage) {
		c.logger.Printf("linkage: evicted key=%s cause=capacity", keyToken(key))
	})
	if err != nil {
		return nil, newBadConfig("linkage.NewCache", err)
	}
	c.bounded = bounded

	return c, nil
}

// Get returns the Linkage for key, checking the unevictable map then the
// bounded cache before building on miss. Concurrent Get calls for distinct
// keys proceed in parallel; calls for the same key share one build via
// singleflight.
func (c *Cache) Get(ctx context.Context, key Key) (*Linkage, error) {
	if err := ctx.Err(); err != nil {
		return nil, newCancelled("linkage.Cache.Get", err)
	}

	if l, ok := c.lookupOnly(key); ok {
		return l, nil
	}

	v, err, _ := c.group.Do(keyToken(key), func() (any, error) {
		if l, ok := c.lookupOnly(key); ok {
			return l, nil
		}

		return c.build(ctx, key)
	})
	if err != nil {
		return nil, err
	}

	l := v.(*Linkage)
	c.bounded.Add(key, l)

	return l, nil
}

// RegisterUnevictable eagerly builds key's Linkage and installs it in the
// unevictable map. Re-registering an already-registered key is a
// programming error and fails fast.
func (c *Cache) RegisterUnevictable(ctx context.Context, key Key) error {
	c.unevictMu.Lock()
	defer c.unevictMu.Unlock()

	if _, exists := c.unevictable[key]; exists {
		return newBadConfig("linkage.Cache.RegisterUnevictable", errAlreadyRegistered)
	}

	l, err := c.build(ctx, key)
	if err != nil {
		return err
	}

	c.unevictable[key] = l

	return nil
}

// lookupOnly checks the unevictable map then the bounded cache, building
// nothing.
func (c *Cache) lookupOnly(key Key) (*Linkage, bool) {
	c.unevictMu.RLock()
	if l, ok := c.unevictable[key]; ok {
		c.unevictMu.RUnlock()
		return l, true
	}
	c.unevictMu.RUnlock()

	return c.bounded.Get(key)
}

// build runs the three-step policy: sub-linkage crop, then scenario
// overlay, then from scratch, checking ctx at each phase boundary so a
// cancellation never starts a phase it won't be allowed to finish.
func (c *Cache) build(ctx context.Context, key Key) (*Linkage, error) {
	if err := ctx.Err(); err != nil {
		return nil, newCancelled("linkage.Cache.build", err)
	}

	if l, ok := c.tryCrop(ctx, key); ok {
		return l, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, newCancelled("linkage.Cache.build", err)
	}

	if l, ok, err := c.tryOverlay(ctx, key); ok || err != nil {
		return l, err
	}

	if err := ctx.Err(); err != nil {
		return nil, newCancelled("linkage.Cache.build", err)
	}

	return c.builder.BuildFromScratch(ctx, key)
}

// tryCrop attempts the sub-linkage shortcut: key.PointSet has a known
// parent, a Linkage already exists for (parent, key.StreetLayer, key.Mode),
// and the Builder can crop.
func (c *Cache) tryCrop(ctx context.Context, key Key) (*Linkage, bool) {
	cropper, ok := c.builder.(Cropper)
	if !ok {
		return nil, false
	}

	parentOf, ok := key.PointSet.(ParentOf)
	if !ok {
		return nil, false
	}

	parent, ok := parentOf.Parent()
	if !ok {
		return nil, false
	}

	childExtents, childGridded := key.PointSet.Extents()
	parentExtents, parentGridded := parent.Extents()
	if !childGridded || !parentGridded || childExtents.Zoom != parentExtents.Zoom {
		return nil, false
	}

	parentKey := Key{PointSet: parent, StreetLayer: key.StreetLayer, Mode: key.Mode}
	parentLinkage, ok := c.lookupOnly(parentKey)
	if !ok {
		return nil, false
	}

	child, err := cropper.Crop(parentLinkage, key)
	if err != nil {
		return nil, false
	}

	return child, true
}

// tryOverlay attempts the scenario shortcut: key.StreetLayer is registered
// as a scenario copy of a base layer, and the Builder can overlay atop the
// base Linkage (obtained recursively through Get so it benefits from the
// same caching).
func (c *Cache) tryOverlay(ctx context.Context, key Key) (*Linkage, bool, error) {
	overlayer, ok := c.builder.(Overlayer)
	if !ok {
		return nil, false, nil
	}

	base, ok := c.scenarios.BaseOf(key.StreetLayer)
	if !ok {
		return nil, false, nil
	}

	baseKey := Key{PointSet: key.PointSet, StreetLayer: base, Mode: key.Mode}
	baseLinkage, err := c.Get(ctx, baseKey)
	if err != nil {
		return nil, true, err
	}

	overlaid, err := overlayer.Overlay(ctx, baseLinkage, key)
	if err != nil {
		return nil, true, err
	}

	return overlaid, true, nil
}

// keyToken renders key as a string suitable for singleflight grouping and
// log messages. PointSet identity is its pointer value; every PointSet
// implementation in this module is pointer-receiver, so %p is stable for
// the life of the set.
func keyToken(key Key) string {
	return fmt.Sprintf("%p|%s|%s", key.PointSet, key.StreetLayer, key.Mode)
}
