package gauge

import (
	"math"

	"github.com/roffe/speedgauge/pkg/common"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Polar returns the point at distance radius from p in direction deg.
// Angles grow clockwise since the y axis points down.
func (p Point) Polar(deg, radius float64) Point {
	s, c := math.Sincos(deg * common.PiDiv180)
	return p.Add(Point{X: radius * c, Y: radius * s})
}

// Rect is an axis aligned rectangle. Top is smaller than Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width()*common.OneHalf, Y: r.Top + r.Height()*common.OneHalf}
}

func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

type Padding struct {
	Left, Top, Right, Bottom float64
}

type Size struct {
	Width, Height float64
}

// Geometry is derived from the surface bounds and recomputed on resize.
type Geometry struct {
	Bounds       Rect // arc bounding rect
	Center       Point
	Radius       float64
	NeedleRadius float64
	HubRadius    float64
	StrokeWidth  float64
}

// Valid reports whether there is anything to draw.
func (g Geometry) Valid() bool {
	return !g.Bounds.Empty() && g.Radius > 0
}

func computeGeometry(width, height float64, pad Padding, stroke float64) Geometry {
	size := math.Min(width, height)
	if size <= 0 || math.IsNaN(size) {
		return Geometry{StrokeWidth: stroke}
	}
	half := stroke * common.OneHalf
	bounds := Rect{
		Left:   pad.Left + half,
		Top:    pad.Top + half,
		Right:  size - half - pad.Right,
		Bottom: size - half - pad.Bottom,
	}
	if bounds.Empty() {
		return Geometry{Bounds: bounds, StrokeWidth: stroke}
	}
	radius := math.Min(bounds.Width(), bounds.Height()) * common.OneHalf
	return Geometry{
		Bounds:       bounds,
		Center:       bounds.Center(),
		Radius:       radius,
		NeedleRadius: radius * common.TwoThirds,
		HubRadius:    radius * common.OneTenth,
		StrokeWidth:  stroke,
	}
}
