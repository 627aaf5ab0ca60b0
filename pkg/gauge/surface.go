package gauge

import "image/color"

type PaintStyle int

const (
	Fill PaintStyle = iota
	Stroke
)

func (s PaintStyle) String() string {
	switch s {
	case Fill:
		return "fill"
	case Stroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// LinearGradient runs from From to To with its stops spread evenly.
type LinearGradient struct {
	From, To Point
	Stops    []color.RGBA
}

// Offsets returns the position of every stop in [0, 1].
func (g *LinearGradient) Offsets() []float64 {
	n := len(g.Stops)
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// Paint is owned by a single Renderer and copied into every draw call.
type Paint struct {
	Color       color.RGBA
	Style       PaintStyle
	StrokeWidth float64
	Gradient    *LinearGradient
	TextSize    float64
}

// Surface is the host side 2D drawing API.
type Surface interface {
	// DrawArc draws the part of the oval inscribed in oval starting at
	// startDeg and sweeping sweepDeg clockwise.
	DrawArc(oval Rect, startDeg, sweepDeg float64, p Paint)
	DrawCircle(center Point, radius float64, p Paint)
	// DrawPath draws the closed polygon through pts.
	DrawPath(pts []Point, p Paint)
	// DrawText draws s with its baseline starting at (x, y).
	DrawText(s string, x, y float64, p Paint)
}

// TextMeasurer reports the bounds of s relative to its baseline origin,
// so Top is negative for glyphs above the baseline.
type TextMeasurer interface {
	TextBounds(s string, size float64) Rect
}
