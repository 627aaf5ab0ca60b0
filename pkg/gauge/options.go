package gauge

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

const (
	DefaultMaxProgress = 200
	DefaultStartAngle  = -210.0
	DefaultSweepAngle  = 240.0
	DefaultStrokeWidth = 50.0
	DefaultTextSize    = 64.0
	// DefaultLabelOffset puts the label box center half a radius below the hub.
	DefaultLabelOffset = 0.5
)

var (
	Green  = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	Yellow = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	Red    = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	Gray   = color.RGBA{0x88, 0x88, 0x88, 0xFF}
)

var (
	ErrInvalidMaxProgress = errors.New("max progress must be between 1 and 2147483647")
	ErrInvalidSweep       = errors.New("angles must be finite and the sweep between 0 and 360 degrees")
	ErrInvalidStroke      = errors.New("stroke width must not be negative")
)

// Options is the attribute set a host hands over at construction time.
// Zero values and nil pointers select the defaults. The renderer keeps its
// own copies of the pointer fields.
type Options struct {
	Progress    int
	MaxProgress *int
	StartAngle  *float64
	SweepAngle  float64

	FillColor  color.RGBA
	LowColor   color.RGBA
	MidColor   color.RGBA
	HighColor  color.RGBA
	TrackColor color.RGBA

	StrokeWidth float64
	TextSize    float64
	// SuggestedMinSize is the smallest edge the host wants, before padding.
	SuggestedMinSize float64
	Padding          Padding

	// LabelOffset is the distance of the label box center below the hub,
	// as a fraction of the radius. 1 puts it on the bottom of the arc rect.
	LabelOffset *float64

	// HideTrack skips the gray background arc.
	HideTrack bool
}

// Float returns a pointer to v, for the optional fields of Options.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for the optional fields of Options.
func Int(v int) *int { return &v }

// clone detaches the pointer fields from the receiver.
func (o Options) clone() Options {
	if o.MaxProgress != nil {
		o.MaxProgress = Int(*o.MaxProgress)
	}
	if o.StartAngle != nil {
		o.StartAngle = Float(*o.StartAngle)
	}
	if o.LabelOffset != nil {
		o.LabelOffset = Float(*o.LabelOffset)
	}
	return o
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// DefaultOptions returns the attribute defaults: green fill and a
// green, yellow, red gradient.
func DefaultOptions() Options {
	return Options{
		MaxProgress: Int(DefaultMaxProgress),
		StartAngle:  Float(DefaultStartAngle),
		LabelOffset: Float(DefaultLabelOffset),
		SweepAngle:  DefaultSweepAngle,
		FillColor:   Green,
		LowColor:    Green,
		MidColor:    Yellow,
		HighColor:   Red,
		TrackColor:  Gray,
		StrokeWidth: DefaultStrokeWidth,
		TextSize:    DefaultTextSize,
	}
}

// withDefaults fills unset fields and validates the result. The returned
// value shares no pointers with o.
func (o Options) withDefaults() (Options, error) {
	def := DefaultOptions()
	o = o.clone()
	if o.MaxProgress == nil {
		o.MaxProgress = def.MaxProgress
	}
	// The state blob stores progress as an int32.
	if m := *o.MaxProgress; m <= 0 || m > math.MaxInt32 {
		return o, fmt.Errorf("max progress %d: %w", m, ErrInvalidMaxProgress)
	}
	if o.StartAngle == nil {
		o.StartAngle = def.StartAngle
	}
	if !finite(*o.StartAngle) {
		return o, fmt.Errorf("start %v: %w", *o.StartAngle, ErrInvalidSweep)
	}
	if o.SweepAngle == 0 {
		o.SweepAngle = def.SweepAngle
	}
	if !finite(o.SweepAngle) || o.SweepAngle < 0 || o.SweepAngle > 360 {
		return o, fmt.Errorf("sweep %v: %w", o.SweepAngle, ErrInvalidSweep)
	}
	if o.LabelOffset == nil {
		o.LabelOffset = def.LabelOffset
	}
	if !finite(*o.LabelOffset) {
		o.LabelOffset = def.LabelOffset
	}
	if !finite(o.StrokeWidth) || o.StrokeWidth < 0 {
		return o, fmt.Errorf("stroke %.1f: %w", o.StrokeWidth, ErrInvalidStroke)
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = def.StrokeWidth
	}
	if o.TextSize <= 0 {
		o.TextSize = def.TextSize
	}
	var zero color.RGBA
	if o.FillColor == zero {
		o.FillColor = def.FillColor
	}
	if o.LowColor == zero {
		o.LowColor = def.LowColor
	}
	if o.MidColor == zero {
		o.MidColor = def.MidColor
	}
	if o.HighColor == zero {
		o.HighColor = def.HighColor
	}
	if o.TrackColor == zero {
		o.TrackColor = def.TrackColor
	}
	return o, nil
}
