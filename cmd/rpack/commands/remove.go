package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <package> ...",
		Short: "Remove package declarations from DESCRIPTION",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remotes, _ := cmd.Flags().GetStringArray("remote")
			return c.app.Remove(cmd.Context(), args, remotes, c.options(cmd))
		},
	}
	cmd.Flags().StringArray("remote", nil, "Source locator to drop alongside the packages (repeatable)")
	return cmd
}
