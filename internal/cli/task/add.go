package task

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task",
		Long: `Add a task to the list. The list is created on first use.

Examples:
  listo task add "Buy milk" --list Groceries
  listo task add "File taxes" --deadline 2024-04-15 --priority high --category finance

  # Quiet mode for bash capture
  N=$(listo task add "Call mom" --quiet)`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high (default from config)")
	cmd.Flags().String("category", "", "Category")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	deadlineFlag, _ := cmd.Flags().GetString("deadline")
	priority, _ := cmd.Flags().GetString("priority")
	category, _ := cmd.Flags().GetString("category")

	formatter := cli.NewFormatter(cmd)
	deadline, err := cli.ParseOptionalDate(deadlineFlag)
	if err != nil {
		return formatter.Fail(err, "Dates use the YYYY-MM-DD format")
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.close()

	_, err = s.store.Add(cmd.Context(), taskservice.CreateTaskRequest{
		Description: strings.Join(args, " "),
		Deadline:    deadline,
		Priority:    priority,
		Category:    cli.ParseOptionalString(category),
	})
	if err != nil {
		return s.formatter.Fail(err, "")
	}

	return s.reportTask("Added", s.store.Len())
}
