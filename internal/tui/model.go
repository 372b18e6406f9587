// Package tui is the interactive terminal interface over the list registry
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/models"
	listservice "github.com/thenoetrevino/listo/internal/services/list"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	Lists  *listservice.Registry
	Config *config.Config

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState

	input          textinput.Model
	filter         taskservice.Filter
	completedFirst bool
	today          models.Date
}

// InitialModel loads every list, selects the first one and queues
// reminders for its tasks that are due or overdue
func InitialModel(ctx context.Context, lists *listservice.Registry, cfg *config.Config) Model {
	ti := textinput.New()
	ti.CharLimit = 200

	m := Model{
		ctx:               ctx,
		Lists:             lists,
		Config:            cfg,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		input:             ti,
		filter:            taskservice.FilterAll,
		completedFirst:    true,
		today:             models.Today(),
	}

	if err := lists.LoadAll(ctx); err != nil {
		slog.Error("Error loading lists", "error", err)
		m.notifyError(err)
		return m
	}

	if names := lists.Names(); len(names) > 0 {
		m.selectList(names[0])
	}
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// activeStore returns the selected list's store, or nil
func (m Model) activeStore() *taskservice.Store {
	s, err := m.Lists.Active()
	if err != nil {
		return nil
	}
	return s
}

// visibleNumbers returns the 1-based numbers of the tasks passing the filter,
// in display order
func (m Model) visibleNumbers() []int {
	s := m.activeStore()
	if s == nil {
		return nil
	}
	var numbers []int
	for i, t := range s.View(taskservice.FilterAll) {
		if m.filter.Match(t) {
			numbers = append(numbers, i+1)
		}
	}
	return numbers
}

// selectedNumber returns the task number under the cursor, or 0
func (m Model) selectedNumber() int {
	numbers := m.visibleNumbers()
	if len(numbers) == 0 {
		return 0
	}
	sel := m.UiState.SelectedTask()
	if sel >= len(numbers) {
		return 0
	}
	return numbers[sel]
}

// selectedTask returns the task under the cursor
func (m Model) selectedTask() (models.Task, bool) {
	n := m.selectedNumber()
	s := m.activeStore()
	if n == 0 || s == nil {
		return models.Task{}, false
	}
	t, err := s.Task(n)
	if err != nil {
		return models.Task{}, false
	}
	return t, true
}

// clampSelection keeps the cursor inside the visible tasks
func (m Model) clampSelection() {
	m.UiState.SetSelectedTask(m.UiState.SelectedTask(), len(m.visibleNumbers()))
}

// selectList makes name active and shows its reminders
func (m *Model) selectList(name string) {
	s, err := m.Lists.Select(m.ctx, name)
	if err != nil {
		m.notifyError(err)
		return
	}
	m.UiState.SetSelectedTask(0, 0)
	for _, r := range s.CheckDeadlines(m.today) {
		m.NotificationState.Add(state.LevelWarning, r.Message)
	}
}

func (m Model) notifyError(err error) {
	m.NotificationState.Add(state.LevelError, err.Error())
}

func (m Model) notifyInfo(msg string) {
	m.NotificationState.Add(state.LevelInfo, msg)
}
