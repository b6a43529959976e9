package catalog

import (
	"github.com/pentamorph/riskshape/internal/synthetic"
	"github.com/pentamorph/riskshape/internal/types"
)

// definition is the static recipe for one example system. Trajectory,
// contraction modes, connectivity, and subscore trends are hand-assigned
// labels, not derived from the generated series.
type definition struct {
	id           string
	name         string
	description  string
	seed         int64
	trajectory   types.Trajectory
	contraction  []types.ContractionMode
	connectivity string
	pentadic     synthetic.PentadicParams
	invariant    synthetic.InvariantParams
	subscores    []subscoreDef
	events       []types.PerturbationEvent
}

type subscoreDef struct {
	id        string
	label     string
	primary   types.Invariant
	secondary []types.Invariant
	trend     types.SubscoreTrend
	start     float64
}

func walk(start, drift, jitter float64) synthetic.WalkParams {
	return synthetic.WalkParams{Start: start, Drift: drift, Jitter: jitter}
}

// definitions lists the built-in example systems the viewer ships with.
var definitions = []definition{
	{
		id:           "coastal-grid",
		name:         "Coastal Power Grid",
		description:  "Regional transmission grid with heavy storm exposure and strong mutual-aid recovery agreements.",
		seed:         101,
		trajectory:   types.TrajectoryElastic,
		contraction:  nil,
		connectivity: "meshed backbone, radial last mile",
		pentadic: synthetic.PentadicParams{
			Uncertainty: walk(0.45, 0, 0.03),
			Severity:    walk(0.35, 0, 0.025),
			Scope:       walk(0.50, 0, 0.02),
			Correlation: walk(0.30, 0, 0.03),
			Containment: walk(0.70, 0, 0.02),
		},
		invariant: synthetic.InvariantParams{
			Redundancy:              walk(0.72, 0, 0.02),
			ConnectivityDensity:     walk(0.60, 0, 0.02),
			FeedbackLatency:         walk(0.55, 0, 0.03),
			RegenerationRate:        walk(0.65, 0, 0.02),
			DependencyConcentration: walk(0.30, 0, 0.02),
		},
		subscores: []subscoreDef{
			{"spare-capacity", "Spare transmission capacity", types.InvariantRedundancy, nil, types.TrendStable, 0.7},
			{"mutual-aid", "Mutual-aid response depth", types.InvariantRegeneration, []types.Invariant{types.InvariantRedundancy}, types.TrendImproving, 0.55},
			{"substation-fanout", "Substation fan-out", types.InvariantConnectivity, nil, types.TrendStable, 0.6},
		},
		events: []types.PerturbationEvent{
			{Day: 22, Magnitude: 0.35, Description: "Hurricane landfall, two substations offline"},
			{Day: 61, Magnitude: 0.15, Description: "Heat-wave demand spike"},
		},
	},
	{
		id:           "freight-corridor",
		name:         "Freight Rail Corridor",
		description:  "Single-spine freight corridor whose capacity losses persist after each disruption.",
		seed:         202,
		trajectory:   types.TrajectoryPlastic,
		contraction:  []types.ContractionMode{types.ContractionVolume},
		connectivity: "linear spine with few crossovers",
		pentadic: synthetic.PentadicParams{
			Uncertainty: walk(0.40, 0.001, 0.03),
			Severity:    walk(0.45, 0.001, 0.03),
			Scope:       walk(0.60, 0, 0.02),
			Correlation: walk(0.50, 0.001, 0.03),
			Containment: walk(0.45, -0.001, 0.02),
		},
		invariant: synthetic.InvariantParams{
			Redundancy:              walk(0.35, -0.001, 0.02),
			ConnectivityDensity:     walk(0.40, 0, 0.02),
			FeedbackLatency:         walk(0.60, 0, 0.03),
			RegenerationRate:        walk(0.40, -0.001, 0.02),
			DependencyConcentration: walk(0.65, 0.001, 0.02),
		},
		subscores: []subscoreDef{
			{"alternate-routing", "Alternate routing options", types.InvariantRedundancy, []types.Invariant{types.InvariantConnectivity}, types.TrendDeclining, 0.4},
			{"repair-throughput", "Track repair throughput", types.InvariantRegeneration, nil, types.TrendStable, 0.45},
			{"single-operator", "Single-operator exposure", types.InvariantDependency, nil, types.TrendDeclining, 0.6},
		},
		events: []types.PerturbationEvent{
			{Day: 15, Magnitude: 0.30, Description: "Bridge closure after inspection failure"},
			{Day: 48, Magnitude: 0.25, Description: "Labor action idles the southern yard"},
		},
	},
	{
		id:           "reef-fishery",
		name:         "Reef Fishery",
		description:  "Overfished reef ecosystem losing structural diversity with each bleaching event.",
		seed:         303,
		trajectory:   types.TrajectoryDegenerative,
		contraction:  []types.ContractionMode{types.ContractionDimensional, types.ContractionCurvature},
		connectivity: "dense trophic web, thinning",
		pentadic: synthetic.PentadicParams{
			Uncertainty: walk(0.55, 0.002, 0.03),
			Severity:    walk(0.50, 0.002, 0.03),
			Scope:       walk(0.65, 0.001, 0.02),
			Correlation: walk(0.60, 0.002, 0.03),
			Containment: walk(0.40, -0.002, 0.02),
		},
		invariant: synthetic.InvariantParams{
			Redundancy:              walk(0.45, -0.002, 0.02),
			ConnectivityDensity:     walk(0.55, -0.002, 0.02),
			FeedbackLatency:         walk(0.65, 0.001, 0.03),
			RegenerationRate:        walk(0.35, -0.002, 0.02),
			DependencyConcentration: walk(0.55, 0.002, 0.02),
		},
		subscores: []subscoreDef{
			{"species-diversity", "Functional species diversity", types.InvariantRedundancy, []types.Invariant{types.InvariantConnectivity}, types.TrendDeclining, 0.5},
			{"recruitment", "Juvenile recruitment rate", types.InvariantRegeneration, nil, types.TrendVolatile, 0.4},
			{"keystone-reliance", "Keystone-species reliance", types.InvariantDependency, nil, types.TrendDeclining, 0.55},
		},
		events: []types.PerturbationEvent{
			{Day: 10, Magnitude: 0.30, Description: "Mass bleaching event"},
			{Day: 44, Magnitude: 0.20, Description: "Illegal trawling incursion"},
			{Day: 75, Magnitude: 0.35, Description: "Second bleaching pulse"},
		},
	},
	{
		id:           "payment-mesh",
		name:         "Payment Settlement Mesh",
		description:  "Settlement network that rewires around failures and emerges denser after each incident.",
		seed:         404,
		trajectory:   types.TrajectoryRegenerative,
		contraction:  nil,
		connectivity: "small-world, self-rewiring",
		pentadic: synthetic.PentadicParams{
			Uncertainty: walk(0.35, -0.001, 0.03),
			Severity:    walk(0.30, -0.001, 0.025),
			Scope:       walk(0.45, 0, 0.02),
			Correlation: walk(0.40, -0.001, 0.03),
			Containment: walk(0.60, 0.002, 0.02),
		},
		invariant: synthetic.InvariantParams{
			Redundancy:              walk(0.60, 0.002, 0.02),
			ConnectivityDensity:     walk(0.70, 0.001, 0.02),
			FeedbackLatency:         walk(0.35, -0.001, 0.03),
			RegenerationRate:        walk(0.70, 0.001, 0.02),
			DependencyConcentration: walk(0.40, -0.001, 0.02),
		},
		subscores: []subscoreDef{
			{"route-diversity", "Settlement route diversity", types.InvariantConnectivity, []types.Invariant{types.InvariantRedundancy}, types.TrendImproving, 0.65},
			{"failover-drill", "Failover drill cadence", types.InvariantFeedbackLatency, nil, types.TrendImproving, 0.5},
			{"clearing-concentration", "Clearing-house concentration", types.InvariantDependency, nil, types.TrendStable, 0.4},
		},
		events: []types.PerturbationEvent{
			{Day: 33, Magnitude: 0.25, Description: "Primary clearing house outage"},
		},
	},
	{
		id:           "alpine-watershed",
		name:         "Alpine Watershed",
		description:  "Snowpack-fed watershed with fragmenting channel network under sustained drought.",
		seed:         505,
		trajectory:   types.TrajectoryDegenerative,
		contraction:  []types.ContractionMode{types.ContractionFragmentation},
		connectivity: "dendritic, fragmenting",
		pentadic: synthetic.PentadicParams{
			Uncertainty: walk(0.50, 0.001, 0.03),
			Severity:    walk(0.40, 0.001, 0.03),
			Scope:       walk(0.70, 0.001, 0.02),
			Correlation: walk(0.65, 0.001, 0.03),
			Containment: walk(0.35, -0.001, 0.02),
		},
		invariant: synthetic.InvariantParams{
			Redundancy:              walk(0.40, -0.001, 0.02),
			ConnectivityDensity:     walk(0.50, -0.002, 0.02),
			FeedbackLatency:         walk(0.70, 0, 0.03),
			RegenerationRate:        walk(0.30, -0.001, 0.02),
			DependencyConcentration: walk(0.60, 0.001, 0.02),
		},
		subscores: []subscoreDef{
			{"tributary-redundancy", "Tributary redundancy", types.InvariantRedundancy, nil, types.TrendDeclining, 0.45},
			{"channel-connectivity", "Channel connectivity", types.InvariantConnectivity, nil, types.TrendDeclining, 0.5},
			{"snowpack-dependence", "Snowpack dependence", types.InvariantDependency, []types.Invariant{types.InvariantFeedbackLatency}, types.TrendVolatile, 0.6},
		},
		events: []types.PerturbationEvent{
			{Day: 28, Magnitude: 0.20, Description: "Early melt, record low snowpack"},
			{Day: 70, Magnitude: 0.30, Description: "Debris flow severs the main stem"},
		},
	},
}

// build materializes one definition into immutable SystemData.
func build(def definition, seedOffset int64) *types.SystemData {
	gen := synthetic.NewGenerator(def.seed + seedOffset)

	subscores := make([]types.Subscore, len(def.subscores))
	for i, sd := range def.subscores {
		subscores[i] = types.Subscore{
			ID:                  sd.id,
			Label:               sd.label,
			PrimaryInvariant:    sd.primary,
			SecondaryInvariants: sd.secondary,
			Series:              gen.SubscoreSeries(sd.trend, sd.start),
			Trend:               sd.trend,
		}
	}

	return &types.SystemData{
		ID:               def.id,
		Name:             def.name,
		Description:      def.description,
		Trajectory:       def.trajectory,
		ContractionModes: def.contraction,
		Connectivity:     def.connectivity,
		PentadicSeries:   gen.PentadicSeries(def.pentadic, def.events),
		InvariantSeries:  gen.InvariantSeries(def.invariant),
		Subscores:        subscores,
		Perturbations:    def.events,
	}
}
