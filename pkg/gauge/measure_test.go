package gauge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roffe/speedgauge/pkg/gauge"
)

func TestPreferredSize(t *testing.T) {
	// "200 km/h" is 8 glyphs of 32px with the recorder's face: 256 wide, 64 high.
	tests := []struct {
		name string
		opts gauge.Options
		want float64
	}{
		{name: "label", want: math.Trunc(1.05 * (256 + 100))},
		{name: "suggested minimum wins", opts: gauge.Options{SuggestedMinSize: 500}, want: math.Trunc(1.05 * 500)},
		{
			name: "padding",
			opts: gauge.Options{Padding: gauge.Padding{Left: 10, Right: 10, Top: 150, Bottom: 150}},
			want: math.Trunc(1.05 * (64 + 100 + 300)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRenderer(t, tt.opts)
			assert.InDelta(t, tt.want, r.PreferredSize(), 1e-9)
		})
	}
}

func TestPreferredSizeIgnoresCurrentProgress(t *testing.T) {
	r, _ := newRenderer(t, gauge.Options{})
	before := r.PreferredSize()
	r.SetProgress(5)
	assert.Equal(t, before, r.PreferredSize())
	assert.Equal(t, "5 km/h", r.Label())
}

func TestMeasure(t *testing.T) {
	r, _ := newRenderer(t, gauge.Options{})
	desired := r.PreferredSize()
	tests := []struct {
		name string
		w, h gauge.MeasureSpec
		want gauge.Size
	}{
		{
			name: "unspecified",
			want: gauge.Size{Width: desired, Height: desired},
		},
		{
			name: "exactly",
			w:    gauge.MeasureSpec{Mode: gauge.Exactly, Size: 640},
			h:    gauge.MeasureSpec{Mode: gauge.Exactly, Size: 480},
			want: gauge.Size{Width: 640, Height: 480},
		},
		{
			name: "at most smaller",
			w:    gauge.MeasureSpec{Mode: gauge.AtMost, Size: 100},
			h:    gauge.MeasureSpec{Mode: gauge.AtMost, Size: 1000},
			want: gauge.Size{Width: 100, Height: desired},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Measure(tt.w, tt.h))
		})
	}
}
