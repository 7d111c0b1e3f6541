package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key <file>",
		Short: "Print the cache key of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instrument, _ := cmd.Flags().GetBool("instrument")
			key, err := c.app.Key(configPath(cmd), args[0], instrument)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}
	cmd.Flags().Bool("instrument", false, "Derive the key for instrumented output")
	return cmd
}
