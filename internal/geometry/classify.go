package geometry

import "github.com/pentamorph/riskshape/internal/types"

// ShapeClass is the coarse bucket the viewer uses when comparing systems.
type ShapeClass string

const (
	ShapeCompact    ShapeClass = "compact"
	ShapeLarge      ShapeClass = "large"
	ShapeTallNarrow ShapeClass = "tall-narrow"
	ShapeShortWide  ShapeClass = "short-wide"
	ShapeSquare     ShapeClass = "square"
)

// Classification thresholds. Area checks run before aspect-ratio checks, so a
// large-but-square profile always reports large; reordering these would
// change classifications.
const (
	compactAreaMax = 0.15
	largeAreaMin   = 0.5
	tallRatioMin   = 1.5
	wideRatioMax   = 0.67
)

// Classify buckets a profile by footprint first, then aspect ratio.
func Classify(p types.PentadicProfile) ShapeClass {
	area := Area(p)
	if area < compactAreaMax {
		return ShapeCompact
	}
	if area > largeAreaMin {
		return ShapeLarge
	}

	ratio := p.Severity / p.Scope
	switch {
	case ratio > tallRatioMin:
		return ShapeTallNarrow
	case ratio < wideRatioMax:
		return ShapeShortWide
	default:
		return ShapeSquare
	}
}
