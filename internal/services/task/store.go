// Package task implements the per-list task store: an ordered, in-memory
// collection of tasks kept in sync with a pluggable persistence backend.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/message"

	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/locale"
	"github.com/thenoetrevino/listo/internal/models"
)

// Filter selects tasks by completion state in View
type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterPending
)

func (f Filter) String() string {
	switch f {
	case FilterCompleted:
		return "completed"
	case FilterPending:
		return "pending"
	default:
		return "all"
	}
}

// Next cycles all -> pending -> completed -> all
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterPending
	case FilterPending:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Match reports whether t passes the filter
func (f Filter) Match(t models.Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}

// CreateTaskRequest encapsulates all data needed to add a task.
// Nil pointers and an empty priority mean "not given".
type CreateTaskRequest struct {
	Description string
	Deadline    *models.Date
	Priority    string
	Category    *string
}

// Option configures a Store
type Option func(*Store)

// WithDefaultPriority sets the priority given to tasks added without one
func WithDefaultPriority(p string) Option {
	return func(s *Store) {
		if p = strings.TrimSpace(p); p != "" {
			s.defaultPriority = p
		}
	}
}

// WithPrinter sets the printer used for CSV status labels and reminders
func WithPrinter(p *message.Printer) Option {
	return func(s *Store) {
		if p != nil {
			s.printer = p
		}
	}
}

// WithExportDir sets the directory for default snapshot and CSV paths
func WithExportDir(dir string) Option {
	return func(s *Store) {
		s.exportDir = dir
	}
}

// Store owns the ordered tasks of one named list.
// Mutations write to the backend first and only then change memory,
// so a failed write leaves memory equal to storage.
type Store struct {
	name  string
	repo  database.DataStore
	list  *models.List
	tasks []models.Task

	defaultPriority string
	printer         *message.Printer
	exportDir       string
}

// NewStore creates an empty store for the named list. Call Load to fetch
// the persisted tasks.
func NewStore(name string, repo database.DataStore, opts ...Option) *Store {
	s := &Store{
		name:            name,
		repo:            repo,
		defaultPriority: models.DefaultPriority,
		printer:         locale.NewPrinter(""),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the list name
func (s *Store) Name() string {
	return s.name
}

// Len returns the number of tasks in memory
func (s *Store) Len() int {
	return len(s.tasks)
}

// Load replaces the in-memory tasks with the persisted ones.
// A list that has not been persisted yet loads as empty.
func (s *Store) Load(ctx context.Context) error {
	list, err := s.repo.GetListByName(ctx, s.name)
	if errors.Is(err, models.ErrNotFound) {
		s.list = nil
		s.tasks = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load list '%s': %w", s.name, err)
	}

	stored, err := s.repo.GetTasksByList(ctx, list)
	if err != nil {
		return fmt.Errorf("failed to load tasks of '%s': %w", s.name, err)
	}

	tasks := make([]models.Task, 0, len(stored))
	for _, t := range stored {
		tasks = append(tasks, t.Clone())
	}
	s.list = list
	s.tasks = tasks
	return nil
}

// ensureList gets or creates the backing list on first write
func (s *Store) ensureList(ctx context.Context) (*models.List, error) {
	if s.list != nil {
		return s.list, nil
	}
	list, err := s.repo.GetOrCreateList(ctx, s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to create list '%s': %w", s.name, err)
	}
	s.list = list
	return list, nil
}

// Add validates and persists a new task, then appends it
func (s *Store) Add(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return nil, ErrEmptyDescription
	}

	priority := strings.TrimSpace(req.Priority)
	if priority == "" {
		priority = s.defaultPriority
	}

	list, err := s.ensureList(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateTask(ctx, list, models.Task{
		Description: desc,
		Deadline:    req.Deadline,
		Priority:    priority,
		Category:    req.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	s.tasks = append(s.tasks, created.Clone())
	slog.Debug("task added", "list", s.name, "task_id", created.ID)

	result := created.Clone()
	return &result, nil
}

// View returns copies of the tasks matching filter in the current order
func (s *Store) View(filter Filter) []models.Task {
	result := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Match(t) {
			result = append(result, t.Clone())
		}
	}
	return result
}

// Task returns a copy of the task at the 1-based position n
func (s *Store) Task(n int) (models.Task, error) {
	i, err := s.index(n)
	if err != nil {
		return models.Task{}, err
	}
	return s.tasks[i].Clone(), nil
}

func (s *Store) index(n int) (int, error) {
	if n < 1 || n > len(s.tasks) {
		return 0, fmt.Errorf("task %d of %d in '%s': %w", n, len(s.tasks), s.name, ErrInvalidTaskNumber)
	}
	return n - 1, nil
}

// update applies change to a copy of task n, persists it and stores it
func (s *Store) update(ctx context.Context, n int, change func(*models.Task)) error {
	i, err := s.index(n)
	if err != nil {
		return err
	}
	list, err := s.ensureList(ctx)
	if err != nil {
		return err
	}

	updated := s.tasks[i].Clone()
	change(&updated)
	updated = updated.Clone()

	if err := s.write(ctx, list, &updated); err != nil {
		return fmt.Errorf("failed to update task %d: %w", n, err)
	}
	s.tasks[i] = updated
	return nil
}

// write updates t by ID, or inserts it and records the new ID when it has
// none yet (tasks loaded from a snapshot)
func (s *Store) write(ctx context.Context, list *models.List, t *models.Task) error {
	if t.ID != 0 {
		return s.repo.UpdateTask(ctx, list, *t)
	}
	created, err := s.repo.CreateTask(ctx, list, *t)
	if err != nil {
		return err
	}
	t.ID = created.ID
	return nil
}

// MarkCompleted marks task n as done
func (s *Store) MarkCompleted(ctx context.Context, n int) error {
	return s.update(ctx, n, func(t *models.Task) { t.Completed = true })
}

// MarkIncomplete marks task n as not done
func (s *Store) MarkIncomplete(ctx context.Context, n int) error {
	return s.update(ctx, n, func(t *models.Task) { t.Completed = false })
}

// Edit replaces the description of task n
func (s *Store) Edit(ctx context.Context, n int, description string) error {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return ErrEmptyDescription
	}
	return s.update(ctx, n, func(t *models.Task) { t.Description = desc })
}

// SetDeadline sets or, with nil, clears the deadline of task n
func (s *Store) SetDeadline(ctx context.Context, n int, deadline *models.Date) error {
	return s.update(ctx, n, func(t *models.Task) { t.Deadline = deadline })
}

// SetPriority sets the priority of task n; blank resets it to the default
func (s *Store) SetPriority(ctx context.Context, n int, priority string) error {
	p := strings.TrimSpace(priority)
	if p == "" {
		p = s.defaultPriority
	}
	return s.update(ctx, n, func(t *models.Task) { t.Priority = p })
}

// SetCategory sets or, with nil, clears the category of task n
func (s *Store) SetCategory(ctx context.Context, n int, category *string) error {
	return s.update(ctx, n, func(t *models.Task) { t.Category = category })
}

// Delete removes task n from the backend and from memory
func (s *Store) Delete(ctx context.Context, n int) error {
	i, err := s.index(n)
	if err != nil {
		return err
	}
	list, err := s.ensureList(ctx)
	if err != nil {
		return err
	}

	if id := s.tasks[i].ID; id != 0 {
		if err := s.repo.DeleteTask(ctx, list, id); err != nil {
			return fmt.Errorf("failed to delete task %d: %w", n, err)
		}
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// Sort stably moves tasks whose completion state equals completedFirst
// in front of the others. Order within each group is kept.
func (s *Store) Sort(completedFirst bool) {
	slices.SortStableFunc(s.tasks, func(a, b models.Task) int {
		return rankFirst(a.Completed == completedFirst) - rankFirst(b.Completed == completedFirst)
	})
}

// SortByPriority stably orders tasks from high to low priority.
// Unknown priorities go last.
func (s *Store) SortByPriority() {
	slices.SortStableFunc(s.tasks, func(a, b models.Task) int {
		return models.PriorityRank(b.Priority) - models.PriorityRank(a.Priority)
	})
}

func rankFirst(first bool) int {
	if first {
		return 0
	}
	return 1
}

// PersistAll writes every in-memory task back to the backend by ID,
// inserting tasks that have none.
// It stops at the first failure; tasks already written stay written.
func (s *Store) PersistAll(ctx context.Context) error {
	list, err := s.ensureList(ctx)
	if err != nil {
		return err
	}
	for i := range s.tasks {
		if err := s.write(ctx, list, &s.tasks[i]); err != nil {
			slog.Error("persist failed", "list", s.name, "task_id", s.tasks[i].ID, "error", err)
			return fmt.Errorf("failed to persist task %d: %w", i+1, err)
		}
	}
	return nil
}

// defaultPath returns <export dir>/<list name><ext>
func (s *Store) defaultPath(ext string) string {
	return filepath.Join(s.exportDir, s.name+ext)
}
