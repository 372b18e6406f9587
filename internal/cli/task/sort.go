package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/models"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// SortCmd returns the task sort subcommand.
// Sorting reorders the view only; tasks keep their numbers.
func SortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Show tasks sorted by completion or priority",
		Long: `Show the tasks sorted by completion status (completed first by default)
or by priority (high first). The stored order is not changed, so each
task keeps the number shown by 'listo task ls'.

Examples:
  listo task sort
  listo task sort --pending-first
  listo task sort --priority`,
		Args: cobra.NoArgs,
		RunE: runSort,
	}

	cmd.Flags().Bool("pending-first", false, "Put pending tasks first")
	cmd.Flags().Bool("priority", false, "Sort by priority, high first")
	addOutputFlags(cmd)

	return cmd
}

func runSort(cmd *cobra.Command, args []string) error {
	pendingFirst, _ := cmd.Flags().GetBool("pending-first")
	byPriority, _ := cmd.Flags().GetBool("priority")

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	tasks, err := numberedView(s.store, taskservice.FilterAll, func(store *taskservice.Store) error {
		if byPriority {
			store.SortByPriority()
		} else {
			store.Sort(!pendingFirst)
		}
		return nil
	})
	if err != nil {
		return s.formatter.Fail(err, "")
	}

	if s.formatter.JSON {
		if tasks == nil {
			tasks = []numberedTask{}
		}
		return s.formatter.Success(tasks)
	}

	today := models.Today()
	for _, nt := range tasks {
		if s.formatter.Quiet {
			fmt.Fprintln(s.formatter.Out, nt.Number)
			continue
		}
		s.formatter.Printf("%s\n", styles.RenderTask(nt.Number, nt.Task, today))
	}
	return nil
}
