// Package gauge computes and draws a circular speed gauge: a background
// track, a gradient arc following the progress, a triangular needle, a hub
// and a "N km/h" label.
//
// A Renderer is not safe for concurrent use. Hosts call it from their
// render thread and marshal updates from other goroutines themselves.
package gauge

import (
	"image/color"
	"strconv"

	"github.com/roffe/speedgauge/pkg/common"
)

const labelSuffix = " km/h"

type Renderer struct {
	opts     Options
	measurer TextMeasurer

	progress int
	max      int
	start    float64
	geom     Geometry

	fill  Paint
	track Paint
	arc   Paint
	text  Paint

	buf []byte
}

// New validates opts and returns a renderer with no geometry yet.
// The measurer is used for label placement and the sizing pass.
func New(opts Options, m TextMeasurer) (*Renderer, error) {
	r := &Renderer{measurer: m}
	if err := r.Configure(opts); err != nil {
		return nil, err
	}
	r.progress = common.Clamp(r.opts.Progress, 0, r.max)
	return r, nil
}

// Configure replaces the options. Progress is re-clamped against the new
// maximum but not reset, and the geometry is left alone.
func (r *Renderer) Configure(opts Options) error {
	o, err := opts.withDefaults()
	if err != nil {
		return err
	}
	r.opts = o
	r.max = *o.MaxProgress
	r.start = *o.StartAngle
	r.progress = common.Clamp(r.progress, 0, r.max)
	r.configurePaints()
	return nil
}

// Options returns the effective options. Writes through its pointer fields
// do not reach the renderer.
func (r *Renderer) Options() Options { return r.opts.clone() }

func (r *Renderer) configurePaints() {
	r.fill = Paint{Color: r.opts.FillColor, Style: Fill}
	r.text = Paint{Color: r.opts.FillColor, Style: Fill, TextSize: r.opts.TextSize}
	r.track = Paint{Color: r.opts.TrackColor, Style: Stroke, StrokeWidth: r.opts.StrokeWidth}
	r.configureArc()
}

// configureArc rebuilds the gradient paint, which depends on the bounds.
func (r *Renderer) configureArc() {
	b := r.geom.Bounds
	r.arc = Paint{
		Color:       r.opts.FillColor,
		Style:       Stroke,
		StrokeWidth: r.opts.StrokeWidth,
		Gradient: &LinearGradient{
			From:  Point{b.Left, b.Top},
			To:    Point{b.Right, b.Bottom},
			Stops: []color.RGBA{r.opts.LowColor, r.opts.MidColor, r.opts.HighColor},
		},
	}
}

// OnBoundsChanged recomputes the geometry for a width x height surface.
func (r *Renderer) OnBoundsChanged(width, height float64, pad Padding) {
	r.geom = computeGeometry(width, height, pad, r.opts.StrokeWidth)
	r.configureArc()
}

func (r *Renderer) Geometry() Geometry { return r.geom }

// SetProgress clamps v into [0, MaxProgress] and reports whether the
// gauge needs to be redrawn.
func (r *Renderer) SetProgress(v int) bool {
	v = common.Clamp(v, 0, r.max)
	if v == r.progress {
		return false
	}
	r.progress = v
	return true
}

func (r *Renderer) Progress() int { return r.progress }

func (r *Renderer) MaxProgress() int { return r.max }

// AngleFor returns the needle angle in degrees for progress p.
func (r *Renderer) AngleFor(p int) float64 {
	p = common.Clamp(p, 0, r.max)
	return r.start + r.opts.SweepAngle*float64(p)/float64(r.max)
}

func (r *Renderer) CurrentAngle() float64 { return r.AngleFor(r.progress) }

// Needle returns the triangle: the two hub side corners followed by the tip.
func (r *Renderer) Needle() [3]Point {
	a := r.CurrentAngle()
	c := r.geom.Center
	return [3]Point{
		c.Polar(a+common.RightAngle, r.geom.HubRadius),
		c.Polar(a-common.RightAngle, r.geom.HubRadius),
		c.Polar(a, r.geom.NeedleRadius),
	}
}

// Label returns the text shown below the hub.
func (r *Renderer) Label() string { return r.formatLabel(r.progress) }

func (r *Renderer) formatLabel(p int) string {
	r.buf = strconv.AppendInt(r.buf[:0], int64(p), 10)
	r.buf = append(r.buf, labelSuffix...)
	return string(r.buf)
}

func (r *Renderer) textBounds(s string) Rect {
	if r.measurer == nil {
		return Rect{}
	}
	return r.measurer.TextBounds(s, r.opts.TextSize)
}

// LabelOrigin returns the baseline origin of the label: horizontally
// centered on the arc and vertically centered LabelOffset radii below the hub.
func (r *Renderer) LabelOrigin() Point {
	tb := r.textBounds(r.Label())
	b := r.geom.Bounds
	x := b.Left + b.Width()*common.OneHalf - tb.Width()*common.OneHalf - tb.Left
	midY := r.geom.Center.Y + r.geom.Radius * *r.opts.LabelOffset
	y := midY + tb.Height()*common.OneHalf - tb.Bottom
	return Point{X: x, Y: y}
}

// Render draws one frame. Nothing is drawn before the first valid bounds.
func (r *Renderer) Render(s Surface) {
	if !r.geom.Valid() {
		return
	}
	needle := r.Needle()
	s.DrawPath(needle[:], r.fill)
	if !r.opts.HideTrack {
		s.DrawArc(r.geom.Bounds, r.start, r.opts.SweepAngle, r.track)
	}
	s.DrawArc(r.geom.Bounds, r.start, r.CurrentAngle()-r.start, r.arc)
	s.DrawCircle(r.geom.Center, r.geom.HubRadius, r.fill)
	o := r.LabelOrigin()
	s.DrawText(r.Label(), o.X, o.Y, r.text)
}
