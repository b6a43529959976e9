package geometry

import "github.com/pentamorph/riskshape/internal/types"

// Config bounds the rendered shape. Values are taken as given: the mapper is
// a presentation layer, so an inverted range (MinHeight > MaxHeight) produces
// an inverted but deterministic result rather than an error.
type Config struct {
	MinHeight      float64 `json:"min_height"`
	MaxHeight      float64 `json:"max_height"`
	MinWidth       float64 `json:"min_width"`
	MaxWidth       float64 `json:"max_width"`
	MaxGlowBlur    float64 `json:"max_glow_blur"`
	PulseThreshold float64 `json:"pulse_threshold"`
}

// DefaultConfig returns the viewer's standard shape bounds.
func DefaultConfig() Config {
	return Config{
		MinHeight:      40,
		MaxHeight:      160,
		MinWidth:       30,
		MaxWidth:       120,
		MaxGlowBlur:    30,
		PulseThreshold: 0.6,
	}
}

// RenderAttrs is everything the viewer needs to draw one pentadic shape.
type RenderAttrs struct {
	// X is the horizontal position fraction, uncertainty passed through.
	X           float64 `json:"x"`
	Height      float64 `json:"height"`
	Width       float64 `json:"width"`
	FillOpacity float64 `json:"fill_opacity"`
	FillColor   string  `json:"fill_color"`
	GlowBlur    float64 `json:"glow_blur"`
	GlowSpread  float64 `json:"glow_spread"`
	GlowOpacity float64 `json:"glow_opacity"`
	GlowColor   string  `json:"glow_color"`
	ShouldPulse bool    `json:"should_pulse"`
}

// MapProfile converts one pentadic profile into concrete rendering
// attributes. Pure linear and piecewise-linear interpolation only: no
// randomness, no I/O, and two calls with identical inputs are identical.
// Inputs outside [0,1] are tolerated and mapped through the same arithmetic.
func MapProfile(p types.PentadicProfile, cfg Config) RenderAttrs {
	return RenderAttrs{
		X:           p.Uncertainty,
		Height:      cfg.MinHeight + p.Severity*(cfg.MaxHeight-cfg.MinHeight),
		Width:       cfg.MinWidth + p.Scope*(cfg.MaxWidth-cfg.MinWidth),
		FillOpacity: clip(0.2+p.Containment*0.7, 0.2, 0.9),
		FillColor:   ContainmentColor(p.Containment),
		GlowBlur:    p.Correlation * cfg.MaxGlowBlur,
		GlowSpread:  p.Correlation * 10,
		GlowOpacity: p.Correlation * 0.8,
		GlowColor:   GlowColor(p.Correlation),
		ShouldPulse: p.Correlation >= cfg.PulseThreshold,
	}
}

// Area is the coarse footprint comparator between systems.
func Area(p types.PentadicProfile) float64 {
	return p.Severity * p.Scope
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
