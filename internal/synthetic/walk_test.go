package synthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pentamorph/riskshape/internal/types"
)

func TestWalkStaysInUnitInterval(t *testing.T) {
	tests := []struct {
		name   string
		params WalkParams
	}{
		{"centered walk", WalkParams{Start: 0.5, Drift: 0, Jitter: 0.05}},
		{"strong upward drift saturates at one", WalkParams{Start: 0.9, Drift: 0.1, Jitter: 0.05}},
		{"strong downward drift saturates at zero", WalkParams{Start: 0.1, Drift: -0.1, Jitter: 0.05}},
		{"high jitter", WalkParams{Start: 0.5, Drift: 0, Jitter: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := NewGenerator(42).Walk(SeriesDays, tt.params)
			assert.Len(t, series, SeriesDays)
			for d, v := range series {
				assert.GreaterOrEqual(t, v, 0.0, "day %d", d)
				assert.LessOrEqual(t, v, 1.0, "day %d", d)
			}
		})
	}
}

func TestWalkDeterministicPerSeed(t *testing.T) {
	params := WalkParams{Start: 0.4, Drift: 0.001, Jitter: 0.03}

	a := NewGenerator(7).Walk(SeriesDays, params)
	b := NewGenerator(7).Walk(SeriesDays, params)
	c := NewGenerator(8).Walk(SeriesDays, params)

	assert.Equal(t, a, b, "same seed must reproduce the same series")
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestSettleWeight(t *testing.T) {
	assert.Equal(t, 1.0, SettleWeight(0, 3))
	assert.InDelta(t, 0.7165, SettleWeight(1, 3), 1e-4)
	assert.Greater(t, SettleWeight(1, 3), SettleWeight(2, 3))
	assert.Zero(t, SettleWeight(5, 0), "non-positive tau contributes nothing")
}

func TestPentadicSeriesPerturbations(t *testing.T) {
	params := PentadicParams{
		Uncertainty: WalkParams{Start: 0.2, Jitter: 0.01},
		Severity:    WalkParams{Start: 0.2, Jitter: 0.01},
		Scope:       WalkParams{Start: 0.5, Jitter: 0.01},
		Correlation: WalkParams{Start: 0.5, Jitter: 0.01},
		Containment: WalkParams{Start: 0.5, Jitter: 0.01},
	}
	event := types.PerturbationEvent{Day: 30, Magnitude: 0.4, Description: "regional outage"}

	quiet := NewGenerator(99).PentadicSeries(params, nil)
	shaken := NewGenerator(99).PentadicSeries(params, []types.PerturbationEvent{event})

	assert.Len(t, shaken, SeriesDays)

	// Identical walks before the event day; lifted uncertainty/severity after.
	assert.Equal(t, quiet[29], shaken[29])
	assert.Greater(t, shaken[30].Uncertainty, quiet[30].Uncertainty)
	assert.Greater(t, shaken[30].Severity, quiet[30].Severity)

	// The push settles: day 40 is closer to the quiet walk than day 30.
	lift30 := shaken[30].Severity - quiet[30].Severity
	lift40 := shaken[40].Severity - quiet[40].Severity
	assert.Greater(t, lift30, lift40)

	// Untouched dimensions are untouched.
	assert.Equal(t, quiet[35].Scope, shaken[35].Scope)
	assert.Equal(t, quiet[35].Containment, shaken[35].Containment)

	for d, p := range shaken {
		for _, dim := range types.Dimensions {
			v := p.Value(dim)
			assert.GreaterOrEqual(t, v, 0.0, "day %d %s", d, dim)
			assert.LessOrEqual(t, v, 1.0, "day %d %s", d, dim)
		}
	}
}

func TestPentadicSeriesIgnoresOutOfRangeEvent(t *testing.T) {
	params := PentadicParams{
		Uncertainty: WalkParams{Start: 0.3, Jitter: 0.01},
		Severity:    WalkParams{Start: 0.3, Jitter: 0.01},
		Scope:       WalkParams{Start: 0.3, Jitter: 0.01},
		Correlation: WalkParams{Start: 0.3, Jitter: 0.01},
		Containment: WalkParams{Start: 0.3, Jitter: 0.01},
	}
	events := []types.PerturbationEvent{{Day: -1, Magnitude: 0.5}, {Day: 400, Magnitude: 0.5}}

	quiet := NewGenerator(5).PentadicSeries(params, nil)
	shaken := NewGenerator(5).PentadicSeries(params, events)
	assert.Equal(t, quiet, shaken)
}

func TestSubscoreSeriesTrendBias(t *testing.T) {
	improving := NewGenerator(11).SubscoreSeries(types.TrendImproving, 0.4)
	declining := NewGenerator(11).SubscoreSeries(types.TrendDeclining, 0.6)

	assert.Greater(t, improving[SeriesDays-1], improving[0])
	assert.Less(t, declining[SeriesDays-1], declining[0])

	for _, series := range [][]float64{improving, declining} {
		for _, v := range series {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}
