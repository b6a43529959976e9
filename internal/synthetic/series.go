package synthetic

import "github.com/pentamorph/riskshape/internal/types"

// settleTau controls how quickly a perturbation's push on the uncertainty and
// severity walks fades: roughly a week to settle back.
const settleTau = 3.0

// PentadicParams holds the per-dimension walk parameters for one system.
type PentadicParams struct {
	Uncertainty WalkParams
	Severity    WalkParams
	Scope       WalkParams
	Correlation WalkParams
	Containment WalkParams
}

// InvariantParams holds the per-invariant walk parameters for one system.
type InvariantParams struct {
	Redundancy              WalkParams
	ConnectivityDensity     WalkParams
	FeedbackLatency         WalkParams
	RegenerationRate        WalkParams
	DependencyConcentration WalkParams
}

// PentadicSeries generates the 90-day pentadic series. Perturbation events
// push the uncertainty and severity walks upward on their day, then settle
// back exponentially.
func (g *Generator) PentadicSeries(params PentadicParams, events []types.PerturbationEvent) []types.PentadicProfile {
	uncertainty := g.Walk(SeriesDays, params.Uncertainty)
	severity := g.Walk(SeriesDays, params.Severity)
	scope := g.Walk(SeriesDays, params.Scope)
	correlation := g.Walk(SeriesDays, params.Correlation)
	containment := g.Walk(SeriesDays, params.Containment)

	for _, ev := range events {
		applyPerturbation(uncertainty, ev)
		applyPerturbation(severity, ev)
	}

	series := make([]types.PentadicProfile, SeriesDays)
	for d := 0; d < SeriesDays; d++ {
		series[d] = types.PentadicProfile{
			Uncertainty: uncertainty[d],
			Severity:    severity[d],
			Scope:       scope[d],
			Correlation: correlation[d],
			Containment: containment[d],
		}
	}
	return series
}

// InvariantSeries generates the 90-day invariant series. It is independent of
// the pentadic series: both are synthetic, neither derives from the other.
func (g *Generator) InvariantSeries(params InvariantParams) []types.InvariantProfile {
	redundancy := g.Walk(SeriesDays, params.Redundancy)
	connectivity := g.Walk(SeriesDays, params.ConnectivityDensity)
	latency := g.Walk(SeriesDays, params.FeedbackLatency)
	regeneration := g.Walk(SeriesDays, params.RegenerationRate)
	dependency := g.Walk(SeriesDays, params.DependencyConcentration)

	series := make([]types.InvariantProfile, SeriesDays)
	for d := 0; d < SeriesDays; d++ {
		series[d] = types.InvariantProfile{
			Redundancy:              redundancy[d],
			ConnectivityDensity:     connectivity[d],
			FeedbackLatency:         latency[d],
			RegenerationRate:        regeneration[d],
			DependencyConcentration: dependency[d],
		}
	}
	return series
}

// SubscoreSeries generates a 90-value indicator series biased by its assigned
// trend tag. The tag shapes the walk; it is never re-derived from the output.
func (g *Generator) SubscoreSeries(trend types.SubscoreTrend, start float64) []float64 {
	params := WalkParams{Start: start, Jitter: 0.02}
	switch trend {
	case types.TrendImproving:
		params.Drift = 0.004
	case types.TrendDeclining:
		params.Drift = -0.004
	case types.TrendVolatile:
		params.Jitter = 0.09
	}
	return g.Walk(SeriesDays, params)
}

// applyPerturbation lifts the series by the event magnitude on its day, with
// an exponential settle-back over the following days.
func applyPerturbation(series []float64, ev types.PerturbationEvent) {
	if ev.Day < 0 || ev.Day >= len(series) {
		return
	}
	for d := ev.Day; d < len(series); d++ {
		push := ev.Magnitude * SettleWeight(float64(d-ev.Day), settleTau)
		series[d] = clamp01(series[d] + push)
	}
}
