// Package cmd assembles the listo command tree
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli/list"
	"github.com/thenoetrevino/listo/internal/cli/setup"
	"github.com/thenoetrevino/listo/internal/cli/task"
	"github.com/thenoetrevino/listo/internal/cli/tutorial"
	"github.com/thenoetrevino/listo/internal/cli/use"
)

// NewRootCmd builds the root command. Run without a subcommand it starts
// the terminal interface.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "listo",
		Short: "listo - named to-do lists in the terminal",
		Long: `listo keeps named to-do lists with deadlines, priorities and categories.

Run without arguments for the interactive interface, or use the
subcommands for scripting. See 'listo tutorial' for a short guide.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	rootCmd.AddCommand(setup.SetupCmd())
	rootCmd.AddCommand(list.ListCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
	rootCmd.AddCommand(TUICmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
