package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"dump", "--progress=75", "--width=400", "--height=400"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "path "))
	assert.Contains(t, lines[2], "sweep=90.0")
	assert.Contains(t, lines[4], `"75 km/h"`)
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gauge.png")
	rootCmd.SetArgs([]string{"render", "--progress=150", "--width=240", "--height=200", "-o", out})
	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestFrames(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"frames", "--count=3", "--dir", dir, "--width=120", "--height=120"})
	require.NoError(t, rootCmd.Execute())

	matches, err := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}
