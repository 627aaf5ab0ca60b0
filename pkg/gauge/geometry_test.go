package gauge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGeometry(t *testing.T) {
	tests := []struct {
		name      string
		w, h      float64
		pad       Padding
		wantRect  Rect
		wantR     float64
		wantValid bool
	}{
		{
			name:      "square",
			w:         400,
			h:         400,
			wantRect:  Rect{25, 25, 375, 375},
			wantR:     175,
			wantValid: true,
		},
		{
			name:      "wide uses the height",
			w:         800,
			h:         300,
			wantRect:  Rect{25, 25, 275, 275},
			wantR:     125,
			wantValid: true,
		},
		{
			name:      "padding",
			w:         300,
			h:         300,
			pad:       Padding{Left: 10, Top: 20, Right: 10, Bottom: 20},
			wantRect:  Rect{35, 45, 265, 255},
			wantR:     105,
			wantValid: true,
		},
		{
			name: "zero",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := computeGeometry(tt.w, tt.h, tt.pad, DefaultStrokeWidth)
			assert.Equal(t, tt.wantValid, g.Valid())
			if !tt.wantValid {
				return
			}
			assert.Equal(t, tt.wantRect, g.Bounds)
			assert.InDelta(t, tt.wantR, g.Radius, 1e-9)
			assert.InDelta(t, tt.wantR*2/3, g.NeedleRadius, 1e-9)
			assert.InDelta(t, tt.wantR/10, g.HubRadius, 1e-9)
			assert.Equal(t, tt.wantRect.Center(), g.Center)
		})
	}
}

func TestOnBoundsChangedIdempotent(t *testing.T) {
	r, err := New(Options{}, nil)
	assert.NoError(t, err)
	r.OnBoundsChanged(333, 517, Padding{Left: 3, Top: 4, Right: 5, Bottom: 6})
	first, firstArc := r.Geometry(), *r.arc.Gradient
	r.OnBoundsChanged(333, 517, Padding{Left: 3, Top: 4, Right: 5, Bottom: 6})
	assert.Equal(t, first, r.Geometry())
	assert.Equal(t, firstArc, *r.arc.Gradient)
}

func TestPolar(t *testing.T) {
	c := Point{10, 10}
	p := c.Polar(90, 5)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 15, p.Y, 1e-9, "positive angles turn clockwise with y down")
}
