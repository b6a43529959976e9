// Package explain serves the static drill-down copy the viewer shows next to
// the shape. Three levels mirror the drill-down: the shape itself, the
// invariants beneath it, and the subscores beneath those. All text is fixed
// at compile time.
package explain

import (
	"github.com/pentamorph/riskshape/internal/contribution"
	"github.com/pentamorph/riskshape/internal/types"
)

// Level is one rung of the drill-down ladder.
type Level string

const (
	LevelShape     Level = "shape"
	LevelInvariant Level = "invariant"
	LevelSubscore  Level = "subscore"
)

// Levels lists the drill-down levels outermost first.
var Levels = []Level{LevelShape, LevelInvariant, LevelSubscore}

// Entry is one explanation card. Strengths is populated only at the invariant
// level, where it carries the contribution strengths linking that invariant
// to each pentadic dimension.
type Entry struct {
	Key       string                                    `json:"key"`
	Title     string                                    `json:"title"`
	Body      string                                    `json:"body"`
	Strengths map[types.Dimension]contribution.Strength `json:"strengths,omitempty"`
}

var shapeEntries = []Entry{
	{
		Key:   string(types.DimensionUncertainty),
		Title: "Horizontal position",
		Body:  "Uncertainty places the shape left to right. A shape far to the right describes a system whose near-term behavior is hard to predict; position says nothing about how bad an outcome would be.",
	},
	{
		Key:   string(types.DimensionSeverity),
		Title: "Height",
		Body:  "Severity sets the shape's height. Taller means a single realized failure costs more. Height is independent of how many parts of the system that failure would touch.",
	},
	{
		Key:   string(types.DimensionScope),
		Title: "Width",
		Body:  "Scope sets the shape's width. Wider means more of the system is exposed when things go wrong. Height times width, the footprint, is the quickest read of total exposure.",
	},
	{
		Key:   string(types.DimensionCorrelation),
		Title: "Glow and pulse",
		Body:  "Correlation drives the glow around the shape, shifting amber to orange to red as coupling rises. Past the pulse threshold the shape pulses: failures here tend to arrive together rather than one at a time.",
	},
	{
		Key:   string(types.DimensionContainment),
		Title: "Fill",
		Body:  "Containment sets fill opacity and color. A solid, bright fill marks a system that can hold a failure where it starts; a faint fill marks one where trouble bleeds outward.",
	},
}

var invariantEntries = []Entry{
	{
		Key:   string(types.InvariantRedundancy),
		Title: "Redundancy",
		Body:  "Spare capacity and duplicate pathways. High redundancy softens single failures and is the main structural source of containment.",
	},
	{
		Key:   string(types.InvariantConnectivity),
		Title: "Connectivity density",
		Body:  "How richly the system's parts interconnect. Dense connectivity spreads load but also widens the blast radius and couples failures together.",
	},
	{
		Key:   string(types.InvariantFeedbackLatency),
		Title: "Feedback latency",
		Body:  "How long the system takes to notice and react to its own state. Slow feedback lets small deviations grow unseen, which shows up mostly as uncertainty.",
	},
	{
		Key:   string(types.InvariantRegeneration),
		Title: "Regeneration rate",
		Body:  "How quickly lost capacity rebuilds after damage. Fast regeneration caps how severe a disruption can become and reinforces containment.",
	},
	{
		Key:   string(types.InvariantDependency),
		Title: "Dependency concentration",
		Body:  "How much of the system leans on a few critical components. Concentration widens scope, synchronizes failures, and undercuts containment. Higher is worse.",
	},
}

var subscoreEntries = []Entry{
	{
		Key:   string(types.TrendStable),
		Title: "Stable",
		Body:  "The indicator has held its level across the window. Stability in a subscore keeps its invariants, and through them the shape, where they are.",
	},
	{
		Key:   string(types.TrendImproving),
		Title: "Improving",
		Body:  "The indicator trends upward. Expect its primary invariant to strengthen, and watch the shape dimensions that invariant contributes to most.",
	},
	{
		Key:   string(types.TrendDeclining),
		Title: "Declining",
		Body:  "The indicator trends downward. The decline works through its primary invariant first; secondary invariants move more slowly.",
	},
	{
		Key:   string(types.TrendVolatile),
		Title: "Volatile",
		Body:  "The indicator swings widely day to day. Volatility at the subscore level reads as uncertainty at the shape level long before any average shifts.",
	},
}

var catalog map[Level][]Entry

func init() {
	// Attach each invariant's contribution row so the viewer can show which
	// shape dimensions it feeds without a second request.
	withStrengths := make([]Entry, len(invariantEntries))
	for i, e := range invariantEntries {
		e.Strengths = strengthsFor(types.Invariant(e.Key))
		withStrengths[i] = e
	}
	catalog = map[Level][]Entry{
		LevelShape:     shapeEntries,
		LevelInvariant: withStrengths,
		LevelSubscore:  subscoreEntries,
	}
}

func strengthsFor(inv types.Invariant) map[types.Dimension]contribution.Strength {
	out := make(map[types.Dimension]contribution.Strength, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		out[dim] = contribution.StrengthOf(inv, dim)
	}
	return out
}

// ForLevel returns the explanation cards for one drill-down level. The second
// return is false for an unknown level.
func ForLevel(level Level) ([]Entry, bool) {
	entries, ok := catalog[level]
	return entries, ok
}

// Lookup returns the single card addressed by level and key.
func Lookup(level Level, key string) (Entry, bool) {
	entries, ok := catalog[level]
	if !ok {
		return Entry{}, false
	}
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}
