// Package filestore keeps every list as its own JSON document in a directory.
// Each call reads or rewrites the whole document; there is no partial update
// and no protection against concurrent writers.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thenoetrevino/listo/internal/models"
)

// Extension is the file extension of list documents
const Extension = ".json"

// Store implements the list and task repositories on top of JSON files
type Store struct {
	dir string
}

// New returns a Store rooted at dir, creating the directory if needed
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w: %w", dir, models.ErrPersistence, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the list documents
func (s *Store) Dir() string {
	return s.dir
}

// Close is a no-op; files are opened and closed per call
func (s *Store) Close() error {
	return nil
}

// path maps a list name to its document, rejecting names that would
// escape the data directory.
func (s *Store) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: invalid list name %q for file storage", models.ErrValidation, name)
	}
	return filepath.Join(s.dir, name+Extension), nil
}

// GetOrCreateList returns the list, creating an empty document when absent
func (s *Store) GetOrCreateList(ctx context.Context, name string) (*models.List, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := WriteDocument(path, nil); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w: %w", path, models.ErrPersistence, err)
	}

	return &models.List{Name: name}, nil
}

// GetListByName returns the list if its document exists
func (s *Store) GetListByName(ctx context.Context, name string) (*models.List, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("list '%s': %w", name, models.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w: %w", path, models.ErrPersistence, err)
	}

	return &models.List{Name: name}, nil
}

// GetAllLists returns one list per document, ordered by name
func (s *Store) GetAllLists(ctx context.Context) ([]*models.List, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", s.dir, models.ErrPersistence, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Extension {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(names)

	lists := make([]*models.List, 0, len(names))
	for _, name := range names {
		lists = append(lists, &models.List{Name: name})
	}
	return lists, nil
}

// DeleteList removes the list document, and with it every task
func (s *Store) DeleteList(ctx context.Context, list *models.List) error {
	path, err := s.path(list.Name)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("list '%s': %w", list.Name, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("remove %s: %w: %w", path, models.ErrPersistence, err)
	}
	return nil
}

// CreateTask appends a task to the list document and assigns it the next ID
func (s *Store) CreateTask(ctx context.Context, list *models.List, task models.Task) (*models.Task, error) {
	path, tasks, err := s.read(list)
	if err != nil {
		return nil, err
	}

	created := task.Clone()
	created.ID = maxID(tasks) + 1
	tasks = append(tasks, created)

	if err := WriteDocument(path, tasks); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTasksByList returns the tasks of a list in document order
func (s *Store) GetTasksByList(ctx context.Context, list *models.List) ([]*models.Task, error) {
	_, tasks, err := s.read(list)
	if err != nil {
		return nil, err
	}

	result := make([]*models.Task, 0, len(tasks))
	for i := range tasks {
		result = append(result, &tasks[i])
	}
	return result, nil
}

// UpdateTask replaces the stored task with the same ID
func (s *Store) UpdateTask(ctx context.Context, list *models.List, task models.Task) error {
	path, tasks, err := s.read(list)
	if err != nil {
		return err
	}

	i := indexOf(tasks, task.ID)
	if i < 0 {
		return fmt.Errorf("task %d in list '%s': %w", task.ID, list.Name, models.ErrNotFound)
	}
	tasks[i] = task.Clone()

	return WriteDocument(path, tasks)
}

// DeleteTask removes the task with the given ID
func (s *Store) DeleteTask(ctx context.Context, list *models.List, taskID int) error {
	path, tasks, err := s.read(list)
	if err != nil {
		return err
	}

	i := indexOf(tasks, taskID)
	if i < 0 {
		return fmt.Errorf("task %d in list '%s': %w", taskID, list.Name, models.ErrNotFound)
	}
	tasks = append(tasks[:i], tasks[i+1:]...)

	return WriteDocument(path, tasks)
}

// DeleteTasksByList empties the list document
func (s *Store) DeleteTasksByList(ctx context.Context, list *models.List) error {
	path, err := s.path(list.Name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("list '%s': %w", list.Name, models.ErrNotFound)
	}
	return WriteDocument(path, nil)
}

func (s *Store) read(list *models.List) (string, []models.Task, error) {
	path, err := s.path(list.Name)
	if err != nil {
		return "", nil, err
	}
	tasks, err := ReadDocument(path)
	if err != nil {
		return "", nil, err
	}
	return path, tasks, nil
}

func indexOf(tasks []models.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
