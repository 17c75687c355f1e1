package linkage

import (
	"context"

	"github.com/transitaccess/accesscore/pointset"
)

// Builder is the routing engine's side of the Linkage contract: the cache
// calls BuildFromScratch only when neither build-policy shortcut
// (sub-linkage crop, scenario overlay) applies.
type Builder interface {
	// BuildFromScratch computes a Linkage for key with no prior work to
	// reuse.
	BuildFromScratch(ctx context.Context, key Key) (*Linkage, error)
}

// LinkFunc is the upstream routing engine's side of the Linkage contract at
// interface level only: given a cache miss's Key it computes a Linkage
// from scratch. A LinkFunc implements Builder via BuildFromScratch, the
// same func-type-as-interface-adapter idiom as the standard library's
// http.HandlerFunc, so a caller with nothing but a bare routing function
// can still satisfy linkage.Builder without writing a wrapper struct.
type LinkFunc func(ctx context.Context, key Key) (*Linkage, error)

// BuildFromScratch calls f.
func (f LinkFunc) BuildFromScratch(ctx context.Context, key Key) (*Linkage, error) {
	return f(ctx, key)
}

// Cropper is implemented by a Builder that can derive a child Linkage from
// a parent by restricting to the child PointSet's targets, avoiding a full
// rebuild when the child is a known sub-grid of the parent at the same
// zoom. Optional: a Builder that doesn't implement it always falls through
// to BuildFromScratch.
type Cropper interface {
	// Crop derives childKey's Linkage from parent, which was built for the
	// same StreetLayer and Mode over parent's (larger) PointSet.
	Crop(parent *Linkage, childKey Key) (*Linkage, error)
}

// Overlayer is implemented by a Builder that can derive a scenario Linkage
// atop a base Linkage without redoing unchanged-edge work. Optional: a
// Builder that doesn't implement it always falls through to
// BuildFromScratch.
type Overlayer interface {
	// Overlay derives key's Linkage (key.StreetLayer a scenario copy of
	// base) atop the base layer's already-built Linkage baseLinkage.
	Overlay(ctx context.Context, baseLinkage *Linkage, key Key) (*Linkage, error)
}

// ParentOf is implemented by a PointSet that knows its parent grid, letting
// the cache recognize a sub-linkage opportunity. pointset.Gridded
// implements it; its Parent reports a parent when the set was built with
// pointset.NewGriddedChild.
type ParentOf interface {
	Parent() (pointset.PointSet, bool)
}
