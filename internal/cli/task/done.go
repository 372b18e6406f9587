package task

import (
	"github.com/spf13/cobra"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <n>",
		Short: "Mark task n as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMark(cmd, args, true)
		},
	}
	addOutputFlags(cmd)
	return cmd
}

// UndoCmd returns the task undo subcommand
func UndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <n>",
		Short: "Mark task n as not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMark(cmd, args, false)
		},
	}
	addOutputFlags(cmd)
	return cmd
}

func runMark(cmd *cobra.Command, args []string, completed bool) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	n, err := taskNumberArg(s.formatter, args)
	if err != nil {
		return err
	}

	if completed {
		err = s.store.MarkCompleted(cmd.Context(), n)
	} else {
		err = s.store.MarkIncomplete(cmd.Context(), n)
	}
	if err != nil {
		return s.formatter.Fail(err, "Task numbers are shown by 'listo task ls'")
	}

	if completed {
		return s.reportTask("Completed", n)
	}
	return s.reportTask("Reopened", n)
}
