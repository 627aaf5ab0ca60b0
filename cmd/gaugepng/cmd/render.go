package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/roffe/speedgauge/pkg/config"
	"github.com/roffe/speedgauge/pkg/gauge"
	"github.com/roffe/speedgauge/pkg/surface"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "render a single frame to a PNG file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := renderPNG(cfg, cfg.Progress, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Printf("wrote %s (%dx%d, progress %d)", out, cfg.Width, cfg.Height, cfg.Progress)
		return nil
	},
}

func init() {
	renderCmd.Flags().Int("progress", 0, "progress value")
	renderCmd.Flags().StringP("out", "o", "gauge.png", "output file")
	rootCmd.AddCommand(renderCmd)
}

// newRenderer builds a renderer sized to the config surface.
func newRenderer(cfg config.Config, m gauge.TextMeasurer) (*gauge.Renderer, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	r, err := gauge.New(opts, m)
	if err != nil {
		return nil, err
	}
	r.OnBoundsChanged(float64(cfg.Width), float64(cfg.Height), opts.Padding)
	return r, nil
}

func renderPNG(cfg config.Config, progress int, w io.Writer) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", cfg.Width, cfg.Height)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}
	font, err := surface.DefaultFont()
	if err != nil {
		return err
	}
	r, err := newRenderer(cfg, font)
	if err != nil {
		return err
	}
	r.SetProgress(progress)

	s := surface.NewGG(cfg.Width, cfg.Height, font)
	defer s.Close()
	s.Clear(bg)
	r.Render(s)
	return s.EncodePNG(w)
}
