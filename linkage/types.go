// Package linkage caches the connection of a PointSet's features to a
// street network: the expensive, routing-engine-computed egress cost
// tables a reducer needs before it can walk times from network nodes to
// opportunity targets.
//
// The cache never computes a Linkage itself — that is the routing engine's
// job, injected via a Builder — it only decides which of three build paths
// (sub-linkage crop, scenario overlay, from scratch) applies to a miss, and
// enforces the bounded+unevictable, per-key-exclusive access discipline
// around whatever the Builder returns.
package linkage

import (
	"math"

	"github.com/transitaccess/accesscore/pointset"
)

// infCost marks a target unreachable from the street network.
const infCost = math.MaxFloat64

// StreetLayerID identifies a street network snapshot. A scenario street
// layer is registered against its base via ScenarioRegistry; the zero value
// names no layer.
type StreetLayerID string

// Mode is the travel mode a Linkage was computed for.
type Mode string

const (
	ModeWalk  Mode = "walk"
	ModeBike  Mode = "bike"
	ModeDrive Mode = "drive"
)

// Key identifies a cached Linkage. Equality on PointSet is identity
// (interface/pointer), not value — two distinct Gridded wrappers over the
// same underlying grid are different keys, matching the routing engine's
// "opaque, deterministic for equal keys" contract.
type Key struct {
	PointSet    pointset.PointSet
	StreetLayer StreetLayerID
	Mode        Mode
}

// Linkage is the opaque result of connecting a PointSet's targets to a
// street network: one egress cost, in seconds, per target index. The cache
// never interprets Cost beyond indexing and cropping it; the routing engine
// that produced it is the only party that knows how the values were
// derived.
type Linkage struct {
	Key  Key
	Cost []float64
}

// EgressCost returns the egress cost for target i, or infCost
// (math.MaxFloat64) if i is out of range (unreachable from the street
// network at all).
func (l *Linkage) EgressCost(i int) float64 {
	if i < 0 || i >= len(l.Cost) {
		return infCost
	}

	return l.Cost[i]
}
