// Package commands implements the CLI commands for the rpack dependency manager.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.rpack.dev/rpack/internal/app"
	"go.rpack.dev/rpack/internal/build"
)

// CLI represents the command line interface for rpack.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, opts app.Options) error
	Init(ctx context.Context, opts app.Options) error
	Add(ctx context.Context, packages, remotes []string, opts app.Options) error
	Remove(ctx context.Context, packages, remotes []string, opts app.Options) error
	Update(ctx context.Context, name string, opts app.Options) error
	Check(ctx context.Context, opts app.Options) error
	Outdated(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rpack",
		Short:         "Project-local package dependency management for R",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.NoArgs,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// The version flag is declared by hand so -v stays free for --verbose.
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	rootCmd.PersistentFlags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	rootCmd.PersistentFlags().String("config", "", "Path to the rpack.yaml configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log the resolved project environment")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Bare rpack behaves like rpack install.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Install(cmd.Context(), c.options(cmd))
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newOutdatedCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// options collects the persistent flags into the orchestrator options.
func (c *CLI) options(cmd *cobra.Command) app.Options {
	outputMode, _ := cmd.Flags().GetString("output-mode")
	ci, _ := cmd.Flags().GetBool("ci")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// If --ci is set, override output-mode to "linear"
	if ci {
		outputMode = "linear"
	}

	return app.Options{
		OutputMode: outputMode,
		ConfigPath: configPath,
		Verbose:    verbose,
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
