package speedgauge

import (
	"image"
	"image/color"
	"log"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/roffe/speedgauge/pkg/gauge"
	"github.com/roffe/speedgauge/pkg/surface"
)

// SpeedGauge hosts a gauge.Renderer in a Fyne raster.
type SpeedGauge struct {
	widget.BaseWidget

	mu   sync.Mutex
	r    *gauge.Renderer
	font *surface.FontMeasurer
	bg   color.Color

	// opts holds the sizes in Fyne units; r is configured in pixels.
	opts  gauge.Options
	scale float64

	lastW, lastH int

	// OnChanged is called on the UI goroutine after the progress changed.
	OnChanged func(progress int)
}

func New(opts gauge.Options) (*SpeedGauge, error) {
	font, err := surface.DefaultFont()
	if err != nil {
		return nil, err
	}
	r, err := gauge.New(opts, font)
	if err != nil {
		return nil, err
	}
	g := &SpeedGauge{
		r:     r,
		font:  font,
		bg:    color.Transparent,
		opts:  r.Options(),
		scale: 1,
	}
	g.ExtendBaseWidget(g)
	return g, nil
}

// Configure swaps the gauge attributes, keeping the progress. Sizes are in
// Fyne units.
func (g *SpeedGauge) Configure(opts gauge.Options) error {
	g.mu.Lock()
	err := g.r.Configure(opts)
	if err == nil {
		g.opts = g.r.Options()
		err = g.r.Configure(scaled(g.opts, g.scale))
	}
	g.lastW, g.lastH = 0, 0
	g.mu.Unlock()
	if err != nil {
		return err
	}
	g.Refresh()
	return nil
}

// Options returns the effective options in Fyne units.
func (g *SpeedGauge) Options() gauge.Options {
	g.mu.Lock()
	defer g.mu.Unlock()
	o := g.opts
	o.MaxProgress = gauge.Int(*o.MaxProgress)
	o.StartAngle = gauge.Float(*o.StartAngle)
	o.LabelOffset = gauge.Float(*o.LabelOffset)
	return o
}

// scaled converts the size attributes of o from Fyne units to pixels.
func scaled(o gauge.Options, s float64) gauge.Options {
	o.StrokeWidth *= s
	o.TextSize *= s
	o.SuggestedMinSize *= s
	o.Padding = gauge.Padding{
		Left:   o.Padding.Left * s,
		Top:    o.Padding.Top * s,
		Right:  o.Padding.Right * s,
		Bottom: o.Padding.Bottom * s,
	}
	return o
}

// setScale reconfigures the renderer for s pixels per Fyne unit.
// Callers hold g.mu.
func (g *SpeedGauge) setScale(s float64) {
	if s <= 0 || s == g.scale {
		return
	}
	if err := g.r.Configure(scaled(g.opts, s)); err != nil {
		log.Printf("speedgauge: scale %.2f: %v", s, err)
		return
	}
	log.Printf("speedgauge: scale %.2f -> %.2f", g.scale, s)
	g.scale = s
	g.lastW, g.lastH = 0, 0
}

func (g *SpeedGauge) SetBackground(c color.Color) {
	g.mu.Lock()
	g.bg = c
	g.mu.Unlock()
	g.Refresh()
}

// SetProgress must be called on the UI goroutine.
func (g *SpeedGauge) SetProgress(v int) {
	g.mu.Lock()
	changed := g.r.SetProgress(v)
	p := g.r.Progress()
	g.mu.Unlock()
	if !changed {
		return
	}
	g.Refresh()
	if g.OnChanged != nil {
		g.OnChanged(p)
	}
}

func (g *SpeedGauge) Progress() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.Progress()
}

func (g *SpeedGauge) MaxProgress() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.MaxProgress()
}

// SetValue takes a speed sample from any goroutine and applies it on the
// UI goroutine.
func (g *SpeedGauge) SetValue(v float64) {
	p := Round(v)
	fyne.Do(func() { g.SetProgress(p) })
}

// Round converts a speed sample into a progress value.
func Round(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}

func (g *SpeedGauge) SaveState() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.SaveState()
}

func (g *SpeedGauge) RestoreState(b []byte) error {
	g.mu.Lock()
	err := g.r.RestoreState(b)
	g.mu.Unlock()
	if err != nil {
		return err
	}
	g.Refresh()
	return nil
}

// draw renders one frame of w x h pixels.
func (g *SpeedGauge) draw(w, h int) image.Image {
	size := g.Size()
	g.mu.Lock()
	defer g.mu.Unlock()
	if size.Width > 0 && w > 0 {
		// raster sizes are rounded to whole pixels
		g.setScale(math.Round(float64(w)/float64(size.Width)*100) / 100)
	}
	if w != g.lastW || h != g.lastH {
		log.Printf("speedgauge: resize %dx%d -> %dx%d", g.lastW, g.lastH, w, h)
		g.lastW, g.lastH = w, h
		g.r.OnBoundsChanged(float64(w), float64(h), scaled(g.opts, g.scale).Padding)
	}
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	s := surface.NewGG(w, h, g.font)
	defer s.Close()
	s.Clear(g.bg)
	g.r.Render(s)
	return s.Image()
}

func (g *SpeedGauge) minSize() fyne.Size {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fyne.NewSquareSize(float32(g.r.PreferredSize() / g.scale))
}

func (g *SpeedGauge) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(g.draw)
	return &speedGaugeRenderer{
		g:       g,
		raster:  raster,
		objects: []fyne.CanvasObject{raster},
	}
}

type speedGaugeRenderer struct {
	g       *SpeedGauge
	raster  *canvas.Raster
	size    fyne.Size
	objects []fyne.CanvasObject
}

func (r *speedGaugeRenderer) Layout(space fyne.Size) {
	if r.size == space {
		return
	}
	r.size = space
	r.raster.Resize(space)
}

func (r *speedGaugeRenderer) MinSize() fyne.Size { return r.g.minSize() }

func (r *speedGaugeRenderer) Refresh() { r.raster.Refresh() }

func (r *speedGaugeRenderer) Destroy() {}

func (r *speedGaugeRenderer) Objects() []fyne.CanvasObject { return r.objects }
