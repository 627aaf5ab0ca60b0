package surface

import (
	"image"
	"image/color"
	"io"
	"log"

	"github.com/gogpu/gg"

	"github.com/roffe/speedgauge/pkg/common"
	"github.com/roffe/speedgauge/pkg/gauge"
)

// GG rasterizes draw calls into an image with gogpu/gg.
type GG struct {
	ctx   *gg.Context
	font  *FontMeasurer
	width int
	hgt   int
}

// NewGG creates a width x height surface that draws text with font.
func NewGG(width, height int, font *FontMeasurer) *GG {
	return &GG{
		ctx:   gg.NewContext(width, height),
		font:  font,
		width: width,
		hgt:   height,
	}
}

func (s *GG) Width() int  { return s.width }
func (s *GG) Height() int { return s.hgt }

func (s *GG) Close() error { return s.ctx.Close() }

// Clear fills the whole surface with bg.
func (s *GG) Clear(bg color.Color) {
	s.ctx.ClearWithColor(gg.FromColor(bg))
}

func (s *GG) Image() image.Image { return s.ctx.Image() }

func (s *GG) EncodePNG(w io.Writer) error { return s.ctx.EncodePNG(w) }

func (s *GG) TextBounds(str string, size float64) gauge.Rect {
	if s.font == nil {
		return gauge.Rect{}
	}
	return s.font.TextBounds(str, size)
}

func (s *GG) apply(p gauge.Paint) {
	if p.Gradient != nil && len(p.Gradient.Stops) > 0 {
		g := p.Gradient
		b := gg.NewLinearGradientBrush(g.From.X, g.From.Y, g.To.X, g.To.Y)
		for i, off := range g.Offsets() {
			b.AddColorStop(off, gg.FromColor(g.Stops[i]))
		}
		s.ctx.SetStrokeBrush(b)
	} else {
		s.ctx.SetColor(p.Color)
	}
	s.ctx.SetLineWidth(p.StrokeWidth)
}

func (s *GG) finish(p gauge.Paint) {
	var err error
	if p.Style == gauge.Stroke {
		err = s.ctx.Stroke()
	} else {
		err = s.ctx.Fill()
	}
	if err != nil {
		log.Printf("gg %s: %v", p.Style, err)
	}
}

func (s *GG) DrawArc(oval gauge.Rect, startDeg, sweepDeg float64, p gauge.Paint) {
	if sweepDeg <= 0 {
		return
	}
	c := oval.Center()
	r := min(oval.Width(), oval.Height()) * common.OneHalf
	s.apply(p)
	s.ctx.ClearPath()
	s.ctx.DrawArc(c.X, c.Y, r, startDeg*common.PiDiv180, (startDeg+sweepDeg)*common.PiDiv180)
	s.finish(p)
}

func (s *GG) DrawCircle(center gauge.Point, radius float64, p gauge.Paint) {
	s.apply(p)
	s.ctx.ClearPath()
	s.ctx.DrawCircle(center.X, center.Y, radius)
	s.finish(p)
}

func (s *GG) DrawPath(pts []gauge.Point, p gauge.Paint) {
	if len(pts) < 2 {
		return
	}
	s.apply(p)
	s.ctx.ClearPath()
	s.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		s.ctx.LineTo(pt.X, pt.Y)
	}
	s.ctx.ClosePath()
	s.finish(p)
}

func (s *GG) DrawText(str string, x, y float64, p gauge.Paint) {
	if s.font == nil {
		return
	}
	s.ctx.SetFont(s.font.Face(p.TextSize))
	s.ctx.SetColor(p.Color)
	s.ctx.DrawString(str, x, y)
}
