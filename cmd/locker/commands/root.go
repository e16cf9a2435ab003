// Package commands implements the CLI commands for the locker lint tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/locker/internal/app"
	"go.trai.ch/locker/internal/build"
	"go.trai.ch/locker/internal/core/domain"
)

// CLI represents the command line interface for locker.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Lint(ctx context.Context, path string, opts app.LintOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           fmt.Sprintf("locker [%s]", domain.DefaultLockFileName),
		Short:         "Lint a flake.lock file for duplicate inputs",
		Long: "locker detects inputs in a flake.lock file that resolve to the same\n" +
			"underlying source (same repository, URL or path), which indicates\n" +
			"redundant or inconsistent pinning.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := domain.DefaultLockFileName
			if len(args) == 1 {
				path = args[0]
			}
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.Lint(cmd.Context(), path, app.LintOptions{
				Verbose: verbose,
			})
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().Bool("verbose", false, "Log lock file details before linting")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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
