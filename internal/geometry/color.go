package geometry

import (
	"fmt"
	"math"
)

type rgb struct{ r, g, b float64 }

var (
	// Containment fill endpoints: near-void navy through saturated teal.
	voidColor = rgb{15, 31, 53}
	tealColor = rgb{45, 90, 135}

	// Glow band endpoints over correlation.
	amberColor  = rgb{245, 158, 11}
	orangeColor = rgb{249, 115, 22}
	redColor    = rgb{239, 68, 68}
)

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func lerpRGB(a, b rgb, t float64) rgb {
	return rgb{lerp(a.r, b.r, t), lerp(a.g, b.g, t), lerp(a.b, b.b, t)}
}

func (c rgb) css() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", int(math.Round(c.r)), int(math.Round(c.g)), int(math.Round(c.b)))
}

func (c rgb) cssAlpha(a float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", int(math.Round(c.r)), int(math.Round(c.g)), int(math.Round(c.b)), a)
}

// ContainmentColor linearly interpolates the fill between the void and teal
// endpoints. ContainmentColor(0) and ContainmentColor(1) reproduce the
// endpoints exactly.
func ContainmentColor(containment float64) string {
	return lerpRGB(voidColor, tealColor, containment).css()
}

// GlowColor maps correlation onto a three-segment palette: below 0.3 a muted
// amber whose alpha scales with correlation*2, from 0.3 to 0.7 an amber to
// orange blend, and from 0.7 a blend out to red.
func GlowColor(correlation float64) string {
	switch {
	case correlation < 0.3:
		return amberColor.cssAlpha(clip(correlation*2, 0, 1))
	case correlation < 0.7:
		t := (correlation - 0.3) / 0.4
		return lerpRGB(amberColor, orangeColor, t).css()
	default:
		t := clip((correlation-0.7)/0.3, 0, 1)
		return lerpRGB(orangeColor, redColor, t).css()
	}
}
