package gauge_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roffe/speedgauge/pkg/gauge"
)

func TestSaveRestoreState(t *testing.T) {
	src, _ := newRenderer(t, gauge.Options{Progress: 137})
	blob := src.SaveState()

	dst, _ := newRenderer(t, gauge.Options{})
	require.NoError(t, dst.RestoreState(blob))
	assert.Equal(t, 137, dst.Progress())
}

func TestSaveStateLargestProgress(t *testing.T) {
	opts := gauge.Options{MaxProgress: gauge.Int(math.MaxInt32), Progress: math.MaxInt32}
	src, _ := newRenderer(t, opts)
	dst, _ := newRenderer(t, gauge.Options{MaxProgress: gauge.Int(math.MaxInt32)})
	require.NoError(t, dst.RestoreState(src.SaveState()))
	assert.Equal(t, math.MaxInt32, dst.Progress())
}

func TestRestoreStateClamps(t *testing.T) {
	blob := make([]byte, 5)
	blob[0] = 1
	binary.BigEndian.PutUint32(blob[1:], 999)

	r, _ := newRenderer(t, gauge.Options{MaxProgress: gauge.Int(100)})
	require.NoError(t, r.RestoreState(blob))
	assert.Equal(t, 100, r.Progress())

	neg := int32(-4)
	binary.BigEndian.PutUint32(blob[1:], uint32(neg))
	require.NoError(t, r.RestoreState(blob))
	assert.Equal(t, 0, r.Progress())
}

func TestRestoreStateRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{"nil", nil},
		{"short", []byte{1, 0, 0}},
		{"version", []byte{9, 0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRenderer(t, gauge.Options{Progress: 42})
			err := r.RestoreState(tt.blob)
			require.ErrorIs(t, err, gauge.ErrBadState)
			assert.Equal(t, 42, r.Progress())
		})
	}
}
