package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <package>[@version] ...",
		Short: "Declare packages in DESCRIPTION and install them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remotes, _ := cmd.Flags().GetStringArray("remote")
			return c.app.Add(cmd.Context(), args, remotes, c.options(cmd))
		},
	}
	cmd.Flags().StringArray("remote", nil, "Source locator for a package outside the configured repositories (repeatable)")
	return cmd
}
