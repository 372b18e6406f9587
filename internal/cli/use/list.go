package use

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
)

// ListCmd returns the use list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [name]",
		Short: "Set list context for current shell session",
		Long: `Set the current list context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(listo use list Groceries)  # Use the Groceries list
  eval $(listo use list --clear)    # Clear list context
  listo use list --show             # Show current list

The LISTO_LIST environment variable will be set in your current shell
session only. The --list flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseList,
	}

	cmd.Flags().Bool("clear", false, "Clear the current list context")
	cmd.Flags().Bool("show", false, "Show the current list context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if showFlag {
		return showCurrentList(cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(stderr, "Would clear %s\n", cli.EnvList)
			return nil
		}
		fmt.Fprintf(stdout, "unset %s\n", cli.EnvList)
		fmt.Fprintf(stderr, "Cleared list context\n")
		return nil
	}

	formatter := cli.NewFormatter(cmd)
	if len(args) == 0 {
		return formatter.Fail(&cli.UsageError{Err: fmt.Errorf("list name required")}, "Usage: eval $(listo use list <name>)")
	}
	name := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	store, err := cliInstance.OpenList(ctx, name, false)
	if err != nil {
		return formatter.Fail(err, "Use 'listo list ls' to see available lists")
	}

	if dryRun {
		fmt.Fprintf(stderr, "Would set %s=%s (%d tasks)\n", cli.EnvList, shellQuote(store.Name()), store.Len())
		return nil
	}

	fmt.Fprintf(stdout, "export %s=%s\n", cli.EnvList, shellQuote(store.Name()))
	fmt.Fprintf(stderr, "Now using list '%s'\n", store.Name())

	return nil
}

func showCurrentList(cmd *cobra.Command) error {
	stdout := cmd.OutOrStdout()

	current := os.Getenv(cli.EnvList)
	if current == "" {
		fmt.Fprintln(stdout, "No list context set")
		fmt.Fprintln(stdout, "Use 'eval $(listo use list <name>)' to set one")
		return nil
	}

	ctx := cmd.Context()
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	store, err := cliInstance.OpenList(ctx, current, false)
	if err != nil {
		fmt.Fprintf(stdout, "Current list: %s (list not found)\n", current)
		return nil
	}

	fmt.Fprintf(stdout, "Current list: %s (%d tasks)\n", store.Name(), store.Len())
	return nil
}

// shellQuote single-quotes s for POSIX shells when it holds anything
// beyond a safe word
func shellQuote(s string) string {
	safe := s != ""
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' || r == '.') {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
