package surface_test

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roffe/speedgauge/pkg/gauge"
	"github.com/roffe/speedgauge/pkg/surface"
)

func TestRecorderDump(t *testing.T) {
	rec := surface.NewRecorder()
	r, err := gauge.New(gauge.Options{Progress: 100}, rec)
	require.NoError(t, err)
	r.OnBoundsChanged(400, 400, gauge.Padding{})
	r.Render(rec)

	var buf bytes.Buffer
	require.NoError(t, rec.Dump(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "path (217.5,200.0) (182.5,200.0) (200.0,83.3)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "arc rect=(25.0,25.0,375.0,375.0) start=-210.0 sweep=240.0 stroke"))
	assert.Contains(t, lines[2], "sweep=120.0")
	assert.Equal(t, "circle c=(200.0,200.0) r=17.5", lines[3])
	assert.Contains(t, lines[4], `text "100 km/h"`)

	rec.Reset()
	assert.Empty(t, rec.Commands)
}

func TestRecorderCopiesPath(t *testing.T) {
	rec := surface.NewRecorder()
	pts := []gauge.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	rec.DrawPath(pts, gauge.Paint{})
	pts[0].X = 99
	assert.Equal(t, 1.0, rec.Commands[0].Points[0].X)
}

func TestFontMeasurer(t *testing.T) {
	f, err := surface.DefaultFont()
	require.NoError(t, err)

	short := f.TextBounds("0 km/h", gauge.DefaultTextSize)
	long := f.TextBounds("200 km/h", gauge.DefaultTextSize)
	assert.Less(t, short.Top, 0.0)
	assert.Greater(t, short.Bottom, 0.0)
	assert.Greater(t, long.Width(), short.Width())
	assert.Equal(t, short.Height(), long.Height())
	assert.Equal(t, gauge.Rect{}, f.TextBounds("", gauge.DefaultTextSize))

	bigger := f.TextBounds("0 km/h", 2*gauge.DefaultTextSize)
	assert.Greater(t, bigger.Width(), short.Width())
}

func TestGGRender(t *testing.T) {
	font, err := surface.DefaultFont()
	require.NoError(t, err)
	s := surface.NewGG(300, 300, font)
	defer s.Close()
	s.Clear(color.Black)

	r, err := gauge.New(gauge.Options{Progress: 120}, s)
	require.NoError(t, err)
	r.OnBoundsChanged(float64(s.Width()), float64(s.Height()), gauge.Padding{})
	r.Render(s)

	img := s.Image()
	cr, cg, cb, _ := img.At(150, 150).RGBA()
	assert.Less(t, cr>>8, uint32(64), "hub is green")
	assert.Greater(t, cg>>8, uint32(192), "hub is green")
	assert.Less(t, cb>>8, uint32(64), "hub is green")

	br, bg, bb, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{br >> 8, bg >> 8, bb >> 8}, "corner untouched")

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
}
