package task

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RmCmd returns the task rm subcommand
func RmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"delete"},
		Short:   "Delete task n",
		Args:    cobra.ExactArgs(1),
		RunE:    runRm,
	}
	addOutputFlags(cmd)
	return cmd
}

func runRm(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	n, err := taskNumberArg(s.formatter, args)
	if err != nil {
		return err
	}

	t, err := s.store.Task(n)
	if err != nil {
		return s.formatter.Fail(err, "Task numbers are shown by 'listo task ls'")
	}
	if err := s.store.Delete(cmd.Context(), n); err != nil {
		return s.formatter.Fail(err, "")
	}

	if s.formatter.JSON {
		return s.formatter.Success(taskResult{Number: n, Task: t})
	}
	if s.formatter.Quiet {
		fmt.Fprintln(s.formatter.Out, n)
		return nil
	}
	s.formatter.Printf("✓ Deleted task %d: %s\n", n, t.Description)
	return nil
}
