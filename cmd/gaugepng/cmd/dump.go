package cmd

import (
	"github.com/spf13/cobra"

	"github.com/roffe/speedgauge/pkg/surface"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "print the draw commands of one frame",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		rec := surface.NewRecorder()
		r, err := newRenderer(cfg, rec)
		if err != nil {
			return err
		}
		r.Render(rec)
		return rec.Dump(cmd.OutOrStdout())
	},
}

func init() {
	dumpCmd.Flags().Int("progress", 0, "progress value")
	rootCmd.AddCommand(dumpCmd)
}
