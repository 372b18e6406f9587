package task

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/listo/internal/filestore"
	"github.com/thenoetrevino/listo/internal/locale"
	"github.com/thenoetrevino/listo/internal/models"
)

// CSVHeader is the fixed header row of CSV exports
var CSVHeader = []string{"Description", "Status", "Deadline", "Priority", "Category"}

// SaveToFile writes a JSON snapshot of the tasks to path, or to
// <export dir>/<list>.json when path is empty. It returns the path written.
func (s *Store) SaveToFile(path string) (string, error) {
	path = s.SnapshotPath(path)
	if err := filestore.WriteDocument(path, s.tasks); err != nil {
		return "", err
	}
	return path, nil
}

// LoadFromFile replaces the in-memory tasks with a JSON snapshot.
// A missing file leaves the store untouched. A malformed file empties the
// store and returns an error wrapping models.ErrDataCorruption.
// The backend is not written; see Restore. Loaded tasks carry no ID until
// a later write inserts them.
func (s *Store) LoadFromFile(path string) error {
	path = s.SnapshotPath(path)

	tasks, err := filestore.ReadDocument(path)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return nil
	case errors.Is(err, models.ErrDataCorruption):
		s.tasks = nil
		return err
	case err != nil:
		return err
	}

	for i := range tasks {
		tasks[i].ID = 0
	}
	s.tasks = tasks
	return nil
}

// SnapshotPath resolves the path SaveToFile, LoadFromFile and Restore use
// for path: the path itself, or <export dir>/<list>.json when empty.
func (s *Store) SnapshotPath(path string) string {
	if path == "" {
		return s.defaultPath(filestore.Extension)
	}
	return path
}

// Restore loads a snapshot and makes it the persisted content of the list.
// Tasks get fresh IDs from the backend. A missing file is a no-op and
// Restore reports false.
func (s *Store) Restore(ctx context.Context, path string) (bool, error) {
	path = s.SnapshotPath(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err := s.LoadFromFile(path); err != nil {
		return false, err
	}

	list, err := s.ensureList(ctx)
	if err != nil {
		return false, err
	}
	if err := s.repo.DeleteTasksByList(ctx, list); err != nil {
		return false, fmt.Errorf("failed to clear list '%s': %w", s.name, err)
	}

	snapshot := s.tasks
	s.tasks = make([]models.Task, 0, len(snapshot))
	for _, t := range snapshot {
		created, err := s.repo.CreateTask(ctx, list, t)
		if err != nil {
			return false, fmt.Errorf("failed to restore task '%s': %w", t.Description, err)
		}
		s.tasks = append(s.tasks, created.Clone())
	}
	return true, nil
}

// ExportToCSV writes the tasks as a CSV table to path, or to
// <export dir>/<list>.csv when path is empty. It returns the path written.
func (s *Store) ExportToCSV(path string) (string, error) {
	if path == "" {
		path = s.defaultPath(".csv")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w: %w", dir, models.ErrPersistence, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w: %w", path, models.ErrPersistence, err)
	}

	if err := s.writeCSV(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w: %w", path, models.ErrPersistence, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w: %w", path, models.ErrPersistence, err)
	}
	return path, nil
}

func (s *Store) writeCSV(out io.Writer) error {
	w := csv.NewWriter(out)
	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range s.tasks {
		if err := w.Write(s.csvRow(t)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *Store) csvRow(t models.Task) []string {
	status := s.printer.Sprintf(locale.StatusNotCompleted)
	if t.Completed {
		status = s.printer.Sprintf(locale.StatusCompleted)
	}

	var deadline, category string
	if t.Deadline != nil {
		deadline = t.Deadline.String()
	}
	if t.Category != nil {
		category = *t.Category
	}

	return []string{t.Description, status, deadline, t.Priority, category}
}
