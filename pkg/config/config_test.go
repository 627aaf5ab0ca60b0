package config_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roffe/speedgauge/pkg/colors"
	"github.com/roffe/speedgauge/pkg/config"
	"github.com/roffe/speedgauge/pkg/gauge"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gauge.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.MaxProgress)
	assert.Equal(t, 400, cfg.Width)

	o, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, gauge.Green, o.FillColor)
	assert.Equal(t, colors.Palette(colors.ModeNormal).Low, o.LowColor)
	assert.Equal(t, -210.0, *o.StartAngle)
	assert.Equal(t, gauge.DefaultLabelOffset, *o.LabelOffset)

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x17, 0x17, 0x18, 0xFF}, bg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
progress = 75
maxprogress = 120
palette = "Universal"
highcolor = "#FF00FF"
hidetrack = true
padding = 8
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	o, err := cfg.Options()
	require.NoError(t, err)

	assert.Equal(t, 75, o.Progress)
	assert.Equal(t, 120, *o.MaxProgress)
	assert.True(t, o.HideTrack)
	assert.Equal(t, gauge.Padding{Left: 8, Top: 8, Right: 8, Bottom: 8}, o.Padding)
	assert.Equal(t, colors.Palette(colors.ModeUniversal).Low, o.LowColor)
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, o.HighColor)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SPEEDGAUGE_PROGRESS", "42")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Progress)
}

func TestOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		is   error
	}{
		{name: "zero max", body: "maxprogress = 0", is: gauge.ErrInvalidMaxProgress},
		{name: "negative max", body: "maxprogress = -3", is: gauge.ErrInvalidMaxProgress},
		{name: "bad color", body: `lowcolor = "#nothex"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, tt.body))
			require.NoError(t, err)
			_, err = cfg.Options()
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadWithFlags(t *testing.T) {
	path := writeConfig(t, "progress = 10\nwidth = 300")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("progress", 0, "")
	fs.Int("height", 400, "")
	require.NoError(t, fs.Parse([]string{"--progress=99"}))

	cfg, err := config.LoadWithFlags(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.Progress, "flag wins over file")
	assert.Equal(t, 300, cfg.Width, "file wins over default")
	assert.Equal(t, 400, cfg.Height, "unset flag keeps default")
}
