package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/roffe/speedgauge/pkg/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gaugepng",
	Short: "render the speed gauge without a display",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log rasterizer diagnostics")
	pf.Int("width", 400, "surface width in pixels")
	pf.Int("height", 400, "surface height in pixels")
	pf.String("palette", "Normal", "gradient palette")
	pf.Bool("hidetrack", false, "do not draw the background track")
}

// loadConfig merges defaults, config file, environment and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.LoadWithFlags(cfgFile, cmd.Flags())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
