package task

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/models"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// LsCmd returns the task ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long: `List the tasks of a list, numbered from 1.

Examples:
  listo task ls --list Groceries
  listo task ls --pending
  listo task ls --sort priority
  listo task ls --markdown`,
		Args: cobra.NoArgs,
		RunE: runLs,
	}

	cmd.Flags().Bool("completed", false, "Only completed tasks")
	cmd.Flags().Bool("pending", false, "Only pending tasks")
	cmd.Flags().String("sort", "", "Sort before listing: completed, pending, priority")
	cmd.Flags().Bool("markdown", false, "Render the list as markdown")
	addOutputFlags(cmd)

	return cmd
}

// numberedTask pairs a task with its 1-based number in the list
type numberedTask struct {
	Number int         `json:"number"`
	Task   models.Task `json:"task"`
}

func runLs(cmd *cobra.Command, args []string) error {
	completedOnly, _ := cmd.Flags().GetBool("completed")
	pendingOnly, _ := cmd.Flags().GetBool("pending")
	sortBy, _ := cmd.Flags().GetString("sort")
	markdown, _ := cmd.Flags().GetBool("markdown")

	formatter := cli.NewFormatter(cmd)
	if completedOnly && pendingOnly {
		return formatter.Fail(&cli.UsageError{Err: fmt.Errorf("--completed and --pending are mutually exclusive")}, "")
	}

	filter := taskservice.FilterAll
	switch {
	case completedOnly:
		filter = taskservice.FilterCompleted
	case pendingOnly:
		filter = taskservice.FilterPending
	}

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	tasks, err := numberedView(s.store, filter, func(store *taskservice.Store) error {
		return applySort(store, sortBy)
	})
	if err != nil {
		return s.formatter.Fail(err, "Valid orders are: completed, pending, priority")
	}

	if s.formatter.JSON {
		if tasks == nil {
			tasks = []numberedTask{}
		}
		return s.formatter.Success(tasks)
	}

	if s.formatter.Quiet {
		for _, nt := range tasks {
			fmt.Fprintln(s.formatter.Out, nt.Number)
		}
		return nil
	}

	if markdown {
		return renderMarkdown(s, tasks)
	}

	if len(tasks) == 0 {
		s.formatter.Printf("No tasks found in '%s'\n", s.store.Name())
		return nil
	}

	today := models.Today()
	s.formatter.Printf("%s\n", styles.TitleStyle.Render(s.store.Name()))
	for _, nt := range tasks {
		s.formatter.Printf("%s\n", styles.RenderTask(nt.Number, nt.Task, today))
	}
	return nil
}

// numberedView returns the tasks passing filter after reorder ran, each
// carrying the number it had before reordering so later commands can
// address it
func numberedView(store *taskservice.Store, filter taskservice.Filter, reorder func(*taskservice.Store) error) ([]numberedTask, error) {
	numbers := make(map[int]int, store.Len())
	for i, t := range store.View(taskservice.FilterAll) {
		numbers[t.ID] = i + 1
	}

	if err := reorder(store); err != nil {
		return nil, err
	}

	var tasks []numberedTask
	for _, t := range store.View(taskservice.FilterAll) {
		if filter.Match(t) {
			tasks = append(tasks, numberedTask{Number: numbers[t.ID], Task: t})
		}
	}
	return tasks, nil
}

// applySort reorders the in-memory view; the stored order is untouched
func applySort(store *taskservice.Store, by string) error {
	switch strings.ToLower(strings.TrimSpace(by)) {
	case "":
	case "completed":
		store.Sort(true)
	case "pending":
		store.Sort(false)
	case "priority":
		store.SortByPriority()
	default:
		return &cli.UsageError{Err: fmt.Errorf("unknown sort order %q", by)}
	}
	return nil
}

// markdownList builds a GitHub style checklist
func markdownList(name string, tasks []numberedTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	if len(tasks) == 0 {
		b.WriteString("_No tasks_\n")
		return b.String()
	}
	for _, nt := range tasks {
		check := " "
		if nt.Task.Completed {
			check = "x"
		}
		fmt.Fprintf(&b, "- [%s] **%d.** %s", check, nt.Number, nt.Task.Description)
		var meta []string
		if nt.Task.Deadline != nil {
			meta = append(meta, "due "+nt.Task.Deadline.String())
		}
		if nt.Task.Priority != "" {
			meta = append(meta, nt.Task.Priority)
		}
		if nt.Task.Category != nil {
			meta = append(meta, "#"+*nt.Task.Category)
		}
		if len(meta) > 0 {
			fmt.Fprintf(&b, " _(%s)_", strings.Join(meta, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderMarkdown(s *session, tasks []numberedTask) error {
	md := markdownList(s.store.Name(), tasks)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		s.formatter.Printf("%s", md)
		return nil
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		s.formatter.Printf("%s", md)
		return nil
	}
	s.formatter.Printf("%s", rendered)
	return nil
}
