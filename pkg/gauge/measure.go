package gauge

import (
	"math"

	"github.com/roffe/speedgauge/pkg/common"
)

type MeasureMode int

const (
	// Unspecified lets the gauge pick its own size.
	Unspecified MeasureMode = iota
	// AtMost caps the gauge at Size.
	AtMost
	// Exactly forces Size.
	Exactly
)

// MeasureSpec is one axis constraint from the host layout.
type MeasureSpec struct {
	Mode MeasureMode
	Size float64
}

func (s MeasureSpec) resolve(desired float64) float64 {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		return math.Min(desired, s.Size)
	default:
		return desired
	}
}

// PreferredSize is the edge of the square the gauge wants: the widest
// label plus the arc stroke on both sides, or the suggested minimum,
// plus padding, grown a little so the stroke caps are not clipped.
func (r *Renderer) PreferredSize() float64 {
	tb := r.textBounds(r.formatLabel(r.max))
	stroke := 2 * r.opts.StrokeWidth
	pad := r.opts.Padding
	w := math.Max(tb.Width()+stroke, r.opts.SuggestedMinSize) + pad.Left + pad.Right
	h := math.Max(tb.Height()+stroke, r.opts.SuggestedMinSize) + pad.Top + pad.Bottom
	return math.Trunc(common.SizeFudge * math.Max(w, h))
}

// Measure resolves the preferred square against the host constraints.
func (r *Renderer) Measure(width, height MeasureSpec) Size {
	desired := r.PreferredSize()
	return Size{Width: width.resolve(desired), Height: height.resolve(desired)}
}
