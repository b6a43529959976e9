// Package synthetic generates the deterministic 90-day example series the
// viewer renders. Everything here is a seeded random walk: the same seed
// always reproduces the same dataset.
package synthetic

import (
	"math"
	"math/rand"
)

// SeriesDays is the fixed length of every generated time series.
const SeriesDays = 90

// WalkParams shapes one random-walk series.
type WalkParams struct {
	Start  float64 // level on day zero
	Drift  float64 // per-day bias, positive trends upward
	Jitter float64 // half-width of the uniform per-day step
}

// Generator produces seeded random-walk series. Not safe for concurrent use;
// the catalog drives one generator per dataset at load time.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator whose output is fully determined by seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Walk produces a days-long series clamped into [0,1]. Clamping happens here
// at generation, matching the design's two sanctioned clamp points (series
// values and fill opacity); downstream consumers do not re-clamp.
func (g *Generator) Walk(days int, p WalkParams) []float64 {
	series := make([]float64, days)
	level := p.Start
	for d := 0; d < days; d++ {
		step := (g.rng.Float64()*2 - 1) * p.Jitter
		level = clamp01(level + p.Drift + step)
		series[d] = level
	}
	return series
}

// SettleWeight computes exp(-deltaDays/tau), the fraction of a perturbation
// still felt deltaDays after it lands.
func SettleWeight(deltaDays, tau float64) float64 {
	if tau <= 0 {
		return 0
	}
	return math.Exp(-deltaDays / tau)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
