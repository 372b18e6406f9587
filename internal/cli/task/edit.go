package task

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <n>",
		Short: "Change fields of task n",
		Long: `Change one or more fields of task n. Only the given flags are changed.
Pass "none" to clear the deadline or the category.

Examples:
  listo task edit 2 --description "Buy oat milk"
  listo task edit 3 --deadline 2024-06-30 --priority high
  listo task edit 3 --deadline none --category none`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("deadline", "", "New deadline (YYYY-MM-DD, or none)")
	cmd.Flags().String("priority", "", "New priority")
	cmd.Flags().String("category", "", "New category (or none)")
	addOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	formatter := cli.NewFormatter(cmd)
	if !flags.Changed("description") && !flags.Changed("deadline") &&
		!flags.Changed("priority") && !flags.Changed("category") {
		return formatter.Fail(&cli.UsageError{Err: errNothingToEdit}, "Pass at least one of --description, --deadline, --priority, --category")
	}

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	n, err := taskNumberArg(s.formatter, args)
	if err != nil {
		return err
	}

	if flags.Changed("description") {
		desc, _ := flags.GetString("description")
		if err := s.store.Edit(ctx, n, desc); err != nil {
			return s.formatter.Fail(err, "")
		}
	}
	if flags.Changed("deadline") {
		value, _ := flags.GetString("deadline")
		deadline, err := cli.ParseOptionalDate(value)
		if err != nil {
			return s.formatter.Fail(err, "Dates use the YYYY-MM-DD format")
		}
		if err := s.store.SetDeadline(ctx, n, deadline); err != nil {
			return s.formatter.Fail(err, "")
		}
	}
	if flags.Changed("priority") {
		priority, _ := flags.GetString("priority")
		if err := s.store.SetPriority(ctx, n, priority); err != nil {
			return s.formatter.Fail(err, "")
		}
	}
	if flags.Changed("category") {
		category, _ := flags.GetString("category")
		if err := s.store.SetCategory(ctx, n, cli.ParseOptionalString(category)); err != nil {
			return s.formatter.Fail(err, "")
		}
	}

	return s.reportTask("Updated", n)
}
