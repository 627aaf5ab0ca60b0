package surface

import (
	"fmt"
	"io"

	"github.com/roffe/speedgauge/pkg/gauge"
)

type Op int

const (
	OpArc Op = iota
	OpCircle
	OpPath
	OpText
)

func (o Op) String() string {
	switch o {
	case OpArc:
		return "arc"
	case OpCircle:
		return "circle"
	case OpPath:
		return "path"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is one recorded draw call. Only the fields relevant to Op are set.
type Command struct {
	Op     Op
	Rect   gauge.Rect
	Start  float64
	Sweep  float64
	Center gauge.Point
	Radius float64
	Points []gauge.Point
	Text   string
	Origin gauge.Point
	Paint  gauge.Paint
}

func (c Command) String() string {
	switch c.Op {
	case OpArc:
		return fmt.Sprintf("arc rect=(%.1f,%.1f,%.1f,%.1f) start=%.1f sweep=%.1f %s",
			c.Rect.Left, c.Rect.Top, c.Rect.Right, c.Rect.Bottom, c.Start, c.Sweep, c.Paint.Style)
	case OpCircle:
		return fmt.Sprintf("circle c=(%.1f,%.1f) r=%.1f", c.Center.X, c.Center.Y, c.Radius)
	case OpPath:
		s := "path"
		for _, p := range c.Points {
			s += fmt.Sprintf(" (%.1f,%.1f)", p.X, p.Y)
		}
		return s
	case OpText:
		return fmt.Sprintf("text %q at (%.1f,%.1f)", c.Text, c.Origin.X, c.Origin.Y)
	default:
		return c.Op.String()
	}
}

// Recorder is a Surface that keeps every draw call. It measures text as a
// monospaced face where each glyph is half the text size wide.
type Recorder struct {
	Commands []Command
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

func (r *Recorder) DrawArc(oval gauge.Rect, startDeg, sweepDeg float64, p gauge.Paint) {
	r.Commands = append(r.Commands, Command{Op: OpArc, Rect: oval, Start: startDeg, Sweep: sweepDeg, Paint: p})
}

func (r *Recorder) DrawCircle(center gauge.Point, radius float64, p gauge.Paint) {
	r.Commands = append(r.Commands, Command{Op: OpCircle, Center: center, Radius: radius, Paint: p})
}

func (r *Recorder) DrawPath(pts []gauge.Point, p gauge.Paint) {
	cp := make([]gauge.Point, len(pts))
	copy(cp, pts)
	r.Commands = append(r.Commands, Command{Op: OpPath, Points: cp, Paint: p})
}

func (r *Recorder) DrawText(s string, x, y float64, p gauge.Paint) {
	r.Commands = append(r.Commands, Command{Op: OpText, Text: s, Origin: gauge.Point{X: x, Y: y}, Paint: p})
}

func (r *Recorder) TextBounds(s string, size float64) gauge.Rect {
	return gauge.Rect{
		Top:    -size * 0.75,
		Right:  float64(len(s)) * size * 0.5,
		Bottom: size * 0.25,
	}
}

// Ops returns the recorded operations in order.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.Op
	}
	return out
}

// Dump writes one line per command.
func (r *Recorder) Dump(w io.Writer) error {
	for _, c := range r.Commands {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}
