// Package contribution holds the fixed mapping from morphological invariants
// to pentadic dimensions. The table is static configuration: every
// (invariant, dimension) pair carries exactly one qualitative strength.
package contribution

import "github.com/pentamorph/riskshape/internal/types"

// Strength is the qualitative weight of one invariant→dimension pathway.
type Strength string

const (
	StrengthLow      Strength = "low"
	StrengthModerate Strength = "moderate"
	StrengthHigh     Strength = "high"
)

var strengthValues = map[Strength]float64{
	StrengthLow:      0.2,
	StrengthModerate: 0.5,
	StrengthHigh:     0.8,
}

// Value maps a qualitative strength to its numeric constant.
func (s Strength) Value() float64 {
	return strengthValues[s]
}

// table is total over the 5x5 invariant/dimension grid.
var table = map[types.Invariant]map[types.Dimension]Strength{
	types.InvariantRedundancy: {
		types.DimensionUncertainty: StrengthLow,
		types.DimensionSeverity:    StrengthModerate,
		types.DimensionScope:       StrengthModerate,
		types.DimensionCorrelation: StrengthLow,
		types.DimensionContainment: StrengthHigh,
	},
	types.InvariantConnectivity: {
		types.DimensionUncertainty: StrengthModerate,
		types.DimensionSeverity:    StrengthLow,
		types.DimensionScope:       StrengthHigh,
		types.DimensionCorrelation: StrengthHigh,
		types.DimensionContainment: StrengthModerate,
	},
	types.InvariantFeedbackLatency: {
		types.DimensionUncertainty: StrengthHigh,
		types.DimensionSeverity:    StrengthModerate,
		types.DimensionScope:       StrengthLow,
		types.DimensionCorrelation: StrengthModerate,
		types.DimensionContainment: StrengthModerate,
	},
	types.InvariantRegeneration: {
		types.DimensionUncertainty: StrengthLow,
		types.DimensionSeverity:    StrengthHigh,
		types.DimensionScope:       StrengthLow,
		types.DimensionCorrelation: StrengthLow,
		types.DimensionContainment: StrengthHigh,
	},
	types.InvariantDependency: {
		types.DimensionUncertainty: StrengthModerate,
		types.DimensionSeverity:    StrengthHigh,
		types.DimensionScope:       StrengthHigh,
		types.DimensionCorrelation: StrengthHigh,
		types.DimensionContainment: StrengthLow,
	},
}

// StrengthOf returns the qualitative strength of the (invariant, dimension)
// pathway. Total over the closed sets: no missing-key path exists.
func StrengthOf(inv types.Invariant, dim types.Dimension) Strength {
	return table[inv][dim]
}

// GetContribution returns the numeric contribution of invariant inv to
// pentadic dimension dim, one of exactly {0.2, 0.5, 0.8}.
func GetContribution(inv types.Invariant, dim types.Dimension) float64 {
	return StrengthOf(inv, dim).Value()
}

// ForInvariant returns the contribution of inv to every pentadic dimension.
func ForInvariant(inv types.Invariant) map[types.Dimension]float64 {
	out := make(map[types.Dimension]float64, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		out[dim] = GetContribution(inv, dim)
	}
	return out
}

// ForDimension is the inverse lookup: each invariant's contribution to dim.
func ForDimension(dim types.Dimension) map[types.Invariant]float64 {
	out := make(map[types.Invariant]float64, len(types.Invariants))
	for _, inv := range types.Invariants {
		out[inv] = GetContribution(inv, dim)
	}
	return out
}

// AggregateMax aggregates contributions across a subscore's invariants by
// taking the maximum per dimension. A subscore's strongest pathway dominates
// its visible influence; contributions are never added or averaged.
func AggregateMax(invariants []types.Invariant) map[types.Dimension]float64 {
	out := make(map[types.Dimension]float64, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		for _, inv := range invariants {
			if v := GetContribution(inv, dim); v > out[dim] {
				out[dim] = v
			}
		}
	}
	return out
}
