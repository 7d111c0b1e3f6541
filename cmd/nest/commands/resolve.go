package commands

import "github.com/spf13/cobra"

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file>",
		Short: "Print the transform configuration that applies to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Resolve(configPath(cmd), args[0], cmd.OutOrStdout())
		},
	}
}
