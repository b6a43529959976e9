package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pentamorph/riskshape/internal/geometry"
	"github.com/pentamorph/riskshape/internal/types"
)

func snapshot(id string, day int, p types.PentadicProfile, inv types.InvariantProfile) types.Snapshot {
	return types.Snapshot{SystemID: id, Day: day, Pentadic: p, Invariant: inv}
}

func TestSnapshotsDeltasAreBMinusA(t *testing.T) {
	a := snapshot("a", 10,
		types.PentadicProfile{Uncertainty: 0.2, Severity: 0.3, Scope: 0.4, Correlation: 0.5, Containment: 0.6},
		types.InvariantProfile{Redundancy: 0.5, ConnectivityDensity: 0.5, FeedbackLatency: 0.5, RegenerationRate: 0.5, DependencyConcentration: 0.5},
	)
	b := snapshot("b", 20,
		types.PentadicProfile{Uncertainty: 0.5, Severity: 0.2, Scope: 0.4, Correlation: 0.9, Containment: 0.1},
		types.InvariantProfile{Redundancy: 0.7, ConnectivityDensity: 0.3, FeedbackLatency: 0.5, RegenerationRate: 0.6, DependencyConcentration: 0.4},
	)

	res := Snapshots(a, b, geometry.DefaultConfig())

	assert.InDelta(t, 0.3, res.PentadicDelta[types.DimensionUncertainty], 1e-12)
	assert.InDelta(t, -0.1, res.PentadicDelta[types.DimensionSeverity], 1e-12)
	assert.InDelta(t, 0.0, res.PentadicDelta[types.DimensionScope], 1e-12)
	assert.InDelta(t, -0.5, res.PentadicDelta[types.DimensionContainment], 1e-12)

	assert.InDelta(t, 0.2, res.InvariantDelta[types.InvariantRedundancy], 1e-12)
	assert.InDelta(t, -0.2, res.InvariantDelta[types.InvariantConnectivity], 1e-12)
	assert.InDelta(t, 0.0, res.InvariantDelta[types.InvariantFeedbackLatency], 1e-12)
	assert.Len(t, res.PentadicDelta, 5)
	assert.Len(t, res.InvariantDelta, 5)
}

func TestSnapshotsFootprintOrdering(t *testing.T) {
	cfg := geometry.DefaultConfig()
	small := types.PentadicProfile{Severity: 0.2, Scope: 0.3}
	big := types.PentadicProfile{Severity: 0.8, Scope: 0.9}

	tests := []struct {
		name     string
		a, b     types.PentadicProfile
		expected FootprintOrder
	}{
		{"a larger", big, small, FootprintALarger},
		{"b larger", small, big, FootprintBLarger},
		{"equal", small, small, FootprintEqual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Snapshots(
				snapshot("a", 0, tt.a, types.InvariantProfile{}),
				snapshot("b", 0, tt.b, types.InvariantProfile{}),
				cfg,
			)
			assert.Equal(t, tt.expected, res.Footprint)
			assert.InDelta(t, tt.a.Severity*tt.a.Scope, res.A.Area, 1e-12)
			assert.InDelta(t, tt.b.Severity*tt.b.Scope, res.B.Area, 1e-12)
		})
	}
}

func TestSnapshotsCarriesRenderFacts(t *testing.T) {
	cfg := geometry.DefaultConfig()
	calm := types.PentadicProfile{Uncertainty: 0.2, Severity: 0.2, Scope: 0.3, Correlation: 0.1, Containment: 0.8}
	hot := types.PentadicProfile{Uncertainty: 0.8, Severity: 0.9, Scope: 0.9, Correlation: 0.75, Containment: 0.2}

	res := Snapshots(
		snapshot("calm", 5, calm, types.InvariantProfile{}),
		snapshot("hot", 5, hot, types.InvariantProfile{}),
		cfg,
	)

	assert.False(t, res.PulseA)
	assert.True(t, res.PulseB)
	assert.Equal(t, geometry.Classify(calm), res.A.ShapeClass)
	assert.Equal(t, geometry.Classify(hot), res.B.ShapeClass)
	assert.Equal(t, geometry.MapProfile(hot, cfg), res.B.Render)
}
