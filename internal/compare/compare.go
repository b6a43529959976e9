// Package compare diffs two system snapshots side by side. Comparison is a
// pure function over the snapshots plus the geometry mapping; it holds no
// state and touches no series beyond the two selected days.
package compare

import (
	"math"

	"github.com/pentamorph/riskshape/internal/geometry"
	"github.com/pentamorph/riskshape/internal/types"
)

// FootprintOrder says which snapshot covers more severity-by-scope area.
type FootprintOrder string

const (
	FootprintALarger FootprintOrder = "a_larger"
	FootprintBLarger FootprintOrder = "b_larger"
	FootprintEqual   FootprintOrder = "equal"
)

// footprintEpsilon absorbs float noise when two areas are effectively equal.
const footprintEpsilon = 1e-9

// Side is one snapshot with its derived rendering facts.
type Side struct {
	Snapshot   types.Snapshot       `json:"snapshot"`
	Render     geometry.RenderAttrs `json:"render"`
	ShapeClass geometry.ShapeClass  `json:"shape_class"`
	Area       float64              `json:"area"`
}

// Result is the full comparison of two snapshots.
type Result struct {
	A              Side                        `json:"a"`
	B              Side                        `json:"b"`
	PentadicDelta  map[types.Dimension]float64 `json:"pentadic_delta"`
	InvariantDelta map[types.Invariant]float64 `json:"invariant_delta"`
	Footprint      FootprintOrder              `json:"footprint"`
	PulseA         bool                        `json:"pulse_a"`
	PulseB         bool                        `json:"pulse_b"`
}

// Snapshots compares a against b under cfg. Deltas are b minus a, so a
// positive delta means b sits higher on that axis.
func Snapshots(a, b types.Snapshot, cfg geometry.Config) Result {
	sideA := describe(a, cfg)
	sideB := describe(b, cfg)

	pentadic := make(map[types.Dimension]float64, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		pentadic[dim] = b.Pentadic.Value(dim) - a.Pentadic.Value(dim)
	}
	invariant := make(map[types.Invariant]float64, len(types.Invariants))
	for _, inv := range types.Invariants {
		invariant[inv] = b.Invariant.Value(inv) - a.Invariant.Value(inv)
	}

	return Result{
		A:              sideA,
		B:              sideB,
		PentadicDelta:  pentadic,
		InvariantDelta: invariant,
		Footprint:      orderFootprints(sideA.Area, sideB.Area),
		PulseA:         sideA.Render.ShouldPulse,
		PulseB:         sideB.Render.ShouldPulse,
	}
}

func describe(snap types.Snapshot, cfg geometry.Config) Side {
	return Side{
		Snapshot:   snap,
		Render:     geometry.MapProfile(snap.Pentadic, cfg),
		ShapeClass: geometry.Classify(snap.Pentadic),
		Area:       geometry.Area(snap.Pentadic),
	}
}

func orderFootprints(a, b float64) FootprintOrder {
	if math.Abs(a-b) < footprintEpsilon {
		return FootprintEqual
	}
	if a > b {
		return FootprintALarger
	}
	return FootprintBLarger
}
