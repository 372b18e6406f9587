package task

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pathResult is the JSON shape of commands that write a file
type pathResult struct {
	List  string `json:"list"`
	Path  string `json:"path"`
	Tasks int    `json:"tasks"`
}

// SaveCmd returns the task save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [path]",
		Short: "Save a JSON snapshot of the list",
		Long: `Save the tasks of the list as a JSON snapshot.
Without a path the snapshot is written to <export dir>/<list>.json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSave,
	}
	addOutputFlags(cmd)
	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	path, err := s.store.SaveToFile(optionalPath(args))
	if err != nil {
		return s.formatter.Fail(err, "Check that the target directory is writable")
	}
	return s.reportPath("Saved", path)
}

// LoadCmd returns the task load subcommand
func LoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [path]",
		Short: "Replace the list with a JSON snapshot",
		Long: `Replace the tasks of the list with those of a JSON snapshot.
The list is created if needed. A missing snapshot leaves the list unchanged.
Without a path the snapshot is read from <export dir>/<list>.json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLoad,
	}
	addOutputFlags(cmd)
	return cmd
}

func runLoad(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.close()

	path := optionalPath(args)
	restored, err := s.store.Restore(cmd.Context(), path)
	if err != nil {
		return s.formatter.Fail(err, "The snapshot must be a JSON array of tasks, as written by 'listo task save'")
	}
	if !restored {
		return s.reportNoSnapshot(s.store.SnapshotPath(path))
	}
	if s.formatter.JSON {
		return s.formatter.Success(loadResult{
			pathResult: pathResult{List: s.store.Name(), Path: s.store.SnapshotPath(path), Tasks: s.store.Len()},
			Found:      true,
		})
	}
	return s.reportPath("Loaded", path)
}

// loadResult is the JSON shape of task load
type loadResult struct {
	pathResult
	Found bool `json:"found"`
}

func (s *session) reportNoSnapshot(path string) error {
	if s.formatter.JSON {
		return s.formatter.Success(loadResult{
			pathResult: pathResult{List: s.store.Name(), Path: path, Tasks: s.store.Len()},
		})
	}
	if s.formatter.Quiet {
		return nil
	}
	s.formatter.Printf("No snapshot found at %s; '%s' unchanged\n", path, s.store.Name())
	return nil
}

// ExportCmd returns the task export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the list as CSV",
		Long: `Export the tasks of the list as a CSV table with the columns
Description, Status, Deadline, Priority, Category.
Without a path the table is written to <export dir>/<list>.csv.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}
	addOutputFlags(cmd)
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	path, err := s.store.ExportToCSV(optionalPath(args))
	if err != nil {
		return s.formatter.Fail(err, "Check that the target directory is writable")
	}
	return s.reportPath("Exported", path)
}

func optionalPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func (s *session) reportPath(verb, path string) error {
	result := pathResult{List: s.store.Name(), Path: path, Tasks: s.store.Len()}
	if s.formatter.JSON {
		return s.formatter.Success(result)
	}
	if s.formatter.Quiet {
		fmt.Fprintln(s.formatter.Out, path)
		return nil
	}
	if path == "" {
		s.formatter.Printf("✓ %s %d tasks into '%s'\n", verb, result.Tasks, result.List)
		return nil
	}
	s.formatter.Printf("✓ %s '%s' (%d tasks): %s\n", verb, result.List, result.Tasks, path)
	return nil
}
