package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "render a progress sweep as numbered PNG files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		dir, _ := cmd.Flags().GetString("dir")
		if count < 2 {
			return fmt.Errorf("need at least 2 frames, got %d", count)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		var eg errgroup.Group
		eg.SetLimit(runtime.NumCPU())
		for i := 0; i < count; i++ {
			progress := cfg.MaxProgress * i / (count - 1)
			name := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i))
			eg.Go(func() error {
				f, err := os.Create(name)
				if err != nil {
					return err
				}
				if err := renderPNG(cfg, progress, f); err != nil {
					f.Close()
					return fmt.Errorf("%s: %w", name, err)
				}
				return f.Close()
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		log.Printf("wrote %d frames to %s", count, dir)
		return nil
	},
}

func init() {
	framesCmd.Flags().Int("count", 11, "number of frames from 0 to max progress")
	framesCmd.Flags().String("dir", "frames", "output directory")
	rootCmd.AddCommand(framesCmd)
}
