package list

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
)

// CreateCmd returns the list create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new list",
		Long: `Create a new, empty task list.

Examples:
  listo list create Groceries
  listo list create "Work items" --json`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}

	addOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if err := cliInstance.App.Lists.LoadAll(ctx); err != nil {
		return formatter.Fail(err, "")
	}

	store, err := cliInstance.App.Lists.Create(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'listo list ls' to see existing lists")
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{"name": store.Name()})
	}
	if formatter.Quiet {
		return nil
	}
	formatter.Printf("✓ Created list '%s'\n", store.Name())
	formatter.Printf("  Use it with: eval $(listo use list %q)\n", store.Name())
	return nil
}
