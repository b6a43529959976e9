package types

// PentadicProfile is the five-dimensional risk-shape summary of a system on a
// single day. Each field lies in [0,1]; the fields are independent measures
// and do not sum to one. A profile is immutable once produced.
type PentadicProfile struct {
	Uncertainty float64 `json:"uncertainty"`
	Severity    float64 `json:"severity"`
	Scope       float64 `json:"scope"`
	Correlation float64 `json:"correlation"`
	Containment float64 `json:"containment"`
}

// Invariant identifies one of the five morphological invariants that compose
// into the pentadic profile through the contribution table.
type Invariant string

const (
	InvariantRedundancy      Invariant = "redundancy"
	InvariantConnectivity    Invariant = "connectivity_density"
	InvariantFeedbackLatency Invariant = "feedback_latency"
	InvariantRegeneration    Invariant = "regeneration_rate"
	InvariantDependency      Invariant = "dependency_concentration"
)

// Invariants lists all five invariants in canonical display order.
var Invariants = []Invariant{
	InvariantRedundancy,
	InvariantConnectivity,
	InvariantFeedbackLatency,
	InvariantRegeneration,
	InvariantDependency,
}

// Dimension identifies one of the five pentadic dimensions.
type Dimension string

const (
	DimensionUncertainty Dimension = "uncertainty"
	DimensionSeverity    Dimension = "severity"
	DimensionScope       Dimension = "scope"
	DimensionCorrelation Dimension = "correlation"
	DimensionContainment Dimension = "containment"
)

// Dimensions lists all five pentadic dimensions in canonical display order.
var Dimensions = []Dimension{
	DimensionUncertainty,
	DimensionSeverity,
	DimensionScope,
	DimensionCorrelation,
	DimensionContainment,
}

// InvariantProfile holds the five morphological invariant measurements for a
// single day. Same [0,1] convention as PentadicProfile; higher is better for
// every field except DependencyConcentration, where higher is worse. The
// invariant series is generated independently of the pentadic series.
type InvariantProfile struct {
	Redundancy              float64 `json:"redundancy"`
	ConnectivityDensity     float64 `json:"connectivity_density"`
	FeedbackLatency         float64 `json:"feedback_latency"`
	RegenerationRate        float64 `json:"regeneration_rate"`
	DependencyConcentration float64 `json:"dependency_concentration"`
}

// Value returns the field of the profile addressed by inv. The Invariant set
// is closed, so the zero fallback is unreachable in practice.
func (p InvariantProfile) Value(inv Invariant) float64 {
	switch inv {
	case InvariantRedundancy:
		return p.Redundancy
	case InvariantConnectivity:
		return p.ConnectivityDensity
	case InvariantFeedbackLatency:
		return p.FeedbackLatency
	case InvariantRegeneration:
		return p.RegenerationRate
	case InvariantDependency:
		return p.DependencyConcentration
	}
	return 0
}

// Value returns the field of the profile addressed by dim.
func (p PentadicProfile) Value(dim Dimension) float64 {
	switch dim {
	case DimensionUncertainty:
		return p.Uncertainty
	case DimensionSeverity:
		return p.Severity
	case DimensionScope:
		return p.Scope
	case DimensionCorrelation:
		return p.Correlation
	case DimensionContainment:
		return p.Containment
	}
	return 0
}

// Trajectory is the per-system trajectory classification tag. It is assigned
// when the example dataset is constructed, never derived from the series.
type Trajectory string

const (
	TrajectoryElastic      Trajectory = "elastic"
	TrajectoryPlastic      Trajectory = "plastic"
	TrajectoryDegenerative Trajectory = "degenerative"
	TrajectoryRegenerative Trajectory = "regenerative"
)

// ContractionMode is one of the four qualitative geometric deterioration
// patterns tagged per system.
type ContractionMode string

const (
	ContractionVolume        ContractionMode = "volume_contraction"
	ContractionDimensional   ContractionMode = "dimensional_collapse"
	ContractionFragmentation ContractionMode = "topological_fragmentation"
	ContractionCurvature     ContractionMode = "curvature_steepening"
)

// SubscoreTrend is the per-subscore trajectory tag, assigned at generation
// time rather than computed from the series.
type SubscoreTrend string

const (
	TrendStable    SubscoreTrend = "stable"
	TrendImproving SubscoreTrend = "improving"
	TrendDeclining SubscoreTrend = "declining"
	TrendVolatile  SubscoreTrend = "volatile"
)

// Subscore is a domain indicator feeding one or more invariants.
type Subscore struct {
	ID                  string        `json:"id"`
	Label               string        `json:"label"`
	PrimaryInvariant    Invariant     `json:"primary_invariant"`
	SecondaryInvariants []Invariant   `json:"secondary_invariants,omitempty"`
	Series              []float64     `json:"series"`
	Trend               SubscoreTrend `json:"trend"`
}

// Invariants returns the primary invariant followed by any secondaries.
func (s Subscore) Invariants() []Invariant {
	out := make([]Invariant, 0, 1+len(s.SecondaryInvariants))
	out = append(out, s.PrimaryInvariant)
	out = append(out, s.SecondaryInvariants...)
	return out
}

// PerturbationEvent is a discrete disturbance applied to a system's series.
type PerturbationEvent struct {
	Day         int     `json:"day"`
	Magnitude   float64 `json:"magnitude"`
	Description string  `json:"description"`
}

// SystemData aggregates everything the viewer knows about one example system.
// Constructed once at load time by the catalog generator; never mutated.
type SystemData struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	Trajectory       Trajectory          `json:"trajectory"`
	ContractionModes []ContractionMode   `json:"contraction_modes"`
	Connectivity     string              `json:"connectivity"`
	PentadicSeries   []PentadicProfile   `json:"pentadic_series"`
	InvariantSeries  []InvariantProfile  `json:"invariant_series"`
	Subscores        []Subscore          `json:"subscores"`
	Perturbations    []PerturbationEvent `json:"perturbations"`
}

// Days returns the length of the pentadic series.
func (s *SystemData) Days() int {
	return len(s.PentadicSeries)
}

// Snapshot is the pair of profiles for one system on one day.
type Snapshot struct {
	SystemID  string           `json:"system_id"`
	Day       int              `json:"day"`
	Pentadic  PentadicProfile  `json:"pentadic"`
	Invariant InvariantProfile `json:"invariant"`
}

// PlaybackRequest is the request body for creating a playback session.
type PlaybackRequest struct {
	SystemID string  `json:"system_id" binding:"required"`
	Speed    float64 `json:"speed"`
}
