package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nest/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Transform files and directories through the transform cache",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			outDir, _ := cmd.Flags().GetString("out-dir")
			force, _ := cmd.Flags().GetBool("force")
			jobs, _ := cmd.Flags().GetInt("jobs")
			instrument, _ := cmd.Flags().GetBool("instrument")

			results, err := c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath(cmd),
				Paths:      args,
				OutDir:     outDir,
				Force:      force,
				Jobs:       jobs,
				Instrument: instrument,
			}, cmd.OutOrStdout())
			for _, res := range results {
				if res.Err != nil {
					c.logger.Error(res.Err)
				}
			}
			return err
		},
	}
	cmd.Flags().StringP("out-dir", "o", "", "Write output files below this directory")
	cmd.Flags().BoolP("force", "f", false, "Bypass the transform cache")
	cmd.Flags().IntP("jobs", "j", 0, "Number of files transformed in parallel (0 uses settings)")
	cmd.Flags().Bool("instrument", false, "Instrument output for coverage")
	return cmd
}
