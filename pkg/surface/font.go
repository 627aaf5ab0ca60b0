package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/roffe/speedgauge/pkg/gauge"
)

var (
	defaultFontOnce sync.Once
	defaultFont     *FontMeasurer
	defaultFontErr  error
)

// FontMeasurer measures label text with a real font face. Faces are
// created per size and reused.
type FontMeasurer struct {
	source *text.FontSource

	mu    sync.Mutex
	faces map[float64]text.Face
}

// NewFontMeasurer parses a TrueType/OpenType font.
func NewFontMeasurer(ttf []byte) (*FontMeasurer, error) {
	src, err := text.NewFontSource(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontMeasurer{source: src, faces: make(map[float64]text.Face)}, nil
}

// DefaultFont returns the shared Go Regular measurer.
func DefaultFont() (*FontMeasurer, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = NewFontMeasurer(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

func (f *FontMeasurer) Face(size float64) text.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	face, ok := f.faces[size]
	if !ok {
		face = f.source.Face(size)
		f.faces[size] = face
	}
	return face
}

// TextBounds uses the advance for the width and the face ascent and
// descent for the vertical extent.
func (f *FontMeasurer) TextBounds(s string, size float64) gauge.Rect {
	if s == "" {
		return gauge.Rect{}
	}
	face := f.Face(size)
	m := face.Metrics()
	return gauge.Rect{
		Top:    -m.Ascent,
		Right:  face.Advance(s),
		Bottom: m.Descent,
	}
}
