// Package task holds the cli commands that work on the tasks of one list
// e.g., listo task ...
package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the tasks of a list",
		Long: `Manage the tasks of a list.

The list is taken from --list, or from the LISTO_LIST environment variable:

  eval $(listo use list Groceries)
  listo task add "Buy milk"`,
	}

	cmd.PersistentFlags().StringP("list", "l", "", "List name (uses LISTO_LIST env var if not specified)")

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(LsCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(UndoCmd())
	cmd.AddCommand(RmCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(SortCmd())
	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(LoadCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(RemindCmd())

	return cmd
}

// addOutputFlags adds the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}

// session bundles what every task command needs
type session struct {
	cli       *cli.CLI
	store     *taskservice.Store
	formatter *cli.OutputFormatter
}

func (s *session) close() {
	if err := s.cli.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// openSession resolves the list, opens storage and loads the list's tasks.
// With create set, a missing list is created.
func openSession(cmd *cobra.Command, create bool) (*session, error) {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	listName, err := cli.GetListName(cmd)
	if err != nil {
		return nil, formatter.Fail(err, "Set a list with: eval $(listo use list <name>)")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, formatter.Fail(err, "")
	}

	store, err := cliInstance.OpenList(ctx, listName, create)
	if err != nil {
		if closeErr := cliInstance.Close(); closeErr != nil {
			slog.Error("Error closing CLI", "error", closeErr)
		}
		return nil, formatter.Fail(err, "Use 'listo list ls' to see available lists or 'listo list create' to create one")
	}

	return &session{cli: cliInstance, store: store, formatter: formatter}, nil
}

// taskNumberArg parses args[0] as a 1-based task number
func taskNumberArg(f *cli.OutputFormatter, args []string) (int, error) {
	n, err := cli.ParseTaskNumber(args[0])
	if err != nil {
		return 0, f.Fail(err, "Task numbers are shown by 'listo task ls'")
	}
	return n, nil
}

// taskResult is the JSON shape of a single task
type taskResult struct {
	Number int `json:"number"`
	Task   any `json:"task"`
}

func (s *session) reportTask(verb string, n int) error {
	t, err := s.store.Task(n)
	if err != nil {
		return s.formatter.Fail(err, "")
	}
	if s.formatter.JSON {
		return s.formatter.Success(taskResult{Number: n, Task: t})
	}
	if s.formatter.Quiet {
		fmt.Fprintln(s.formatter.Out, n)
		return nil
	}
	s.formatter.Printf("✓ %s task %d: %s\n", verb, n, t.String())
	return nil
}
