package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/models"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// RemindCmd returns the task remind subcommand
func RemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show tasks due today or overdue",
		Long: `Show a reminder for every task whose deadline is today or has passed.

Examples:
  listo task remind --list Work
  listo task remind --date 2024-06-15`,
		Args: cobra.NoArgs,
		RunE: runRemind,
	}

	cmd.Flags().String("date", "", "Check against this date instead of today (YYYY-MM-DD)")
	addOutputFlags(cmd)

	return cmd
}

// reminderResult is the JSON shape of a reminder
type reminderResult struct {
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Task    models.Task `json:"task"`
}

func runRemind(cmd *cobra.Command, args []string) error {
	dateFlag, _ := cmd.Flags().GetString("date")

	formatter := cli.NewFormatter(cmd)
	today := models.Today()
	if dateFlag != "" {
		d, err := models.ParseDate(dateFlag)
		if err != nil {
			return formatter.Fail(err, "Dates use the YYYY-MM-DD format")
		}
		today = d
	}

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	reminders := s.store.CheckDeadlines(today)

	if s.formatter.JSON {
		results := make([]reminderResult, 0, len(reminders))
		for _, r := range reminders {
			results = append(results, reminderResult{Kind: r.Kind.String(), Message: r.Message, Task: r.Task})
		}
		return s.formatter.Success(results)
	}

	for _, r := range reminders {
		if s.formatter.Quiet {
			fmt.Fprintln(s.formatter.Out, r.Message)
			continue
		}
		style := styles.DueTodayStyle
		if r.Kind == taskservice.Overdue {
			style = styles.OverdueStyle
		}
		s.formatter.Printf("%s\n", style.Render("⏰ "+r.Message))
	}
	if len(reminders) == 0 {
		s.formatter.Printf("Nothing due in '%s'\n", s.store.Name())
	}
	return nil
}
