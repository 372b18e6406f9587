package list

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
)

// DeleteCmd returns the list delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a list and all of its tasks",
		Long: `Delete a list. Every task of the list is removed from storage too.

Examples:
  listo list delete Groceries --force`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation prompt")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	name := args[0]
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	registry := cliInstance.App.Lists
	if err := registry.LoadAll(ctx); err != nil {
		return formatter.Fail(err, "")
	}

	store, err := registry.Store(name)
	if err != nil {
		return formatter.Fail(err, "Use 'listo list ls' to see existing lists")
	}

	// Ask for confirmation unless forced or in machine-readable mode
	if !force && !formatter.JSON && !formatter.Quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete list '%s' and its %d tasks? (y/N): ", name, store.Len())
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := registry.Delete(ctx, name); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{"name": name, "deleted": true})
	}
	formatter.Printf("✓ Deleted list '%s'\n", name)
	return nil
}
