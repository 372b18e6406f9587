package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/listo/internal/models"
	listservice "github.com/thenoetrevino/listo/internal/services/list"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
	"github.com/thenoetrevino/listo/internal/tui/huhforms"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// startAddForm opens the task form for a new task on the active list
func (m Model) startAddForm() (tea.Model, tea.Cmd) {
	if m.activeStore() == nil {
		m.notifyInfo(fmt.Sprintf("Create a list first (%s)", m.Config.KeyMappings.CreateList))
		return m, nil
	}
	m.FormState.StartAdd(m.Config.Tasks.DefaultPriority)
	return m.openTaskForm()
}

// startEditForm opens the task form filled from the selected task
func (m Model) startEditForm() (tea.Model, tea.Cmd) {
	if m.activeStore() == nil {
		m.notifyInfo(fmt.Sprintf("Create a list first (%s)", m.Config.KeyMappings.CreateList))
		return m, nil
	}
	t, ok := m.selectedTask()
	if !ok {
		m.notifyInfo("No task selected")
		return m, nil
	}
	m.FormState.StartEdit(m.selectedNumber(), t)
	return m.openTaskForm()
}

func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	fs := m.FormState
	form := huhforms.CreateTaskForm(&fs.Description, &fs.Deadline, &fs.Priority, &fs.Category).
		WithTheme(huhforms.CreateListoTheme(m.Config.ColorScheme))
	fs.TaskForm = form
	m.UiState.SetMode(state.FormMode)
	return m, form.Init()
}

func (m Model) formTitle() string {
	if n := m.FormState.EditingNumber; n != 0 {
		return titleStyle().Render(fmt.Sprintf("Edit task %d", n))
	}
	return titleStyle().Render("New task")
}

// updateTaskForm handles all messages while the task form is open
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.closeTaskForm()
			return m, nil
		case m.Config.KeyMappings.SaveForm:
			return m.submitTaskForm()
		}
	}

	form := m.FormState.TaskForm
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.TaskForm = f
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		return m.submitTaskForm()
	case huh.StateAborted:
		m.closeTaskForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeTaskForm() {
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

// submitTaskForm saves the form values. Rejected values keep the form
// open so they can be corrected.
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	if err := m.applyTaskForm(); err != nil {
		m.notifyError(err)
		if form := m.FormState.TaskForm; form != nil {
			form.State = huh.StateNormal
		}
		return m, nil
	}
	m.closeTaskForm()
	m.clampSelection()
	return m, tea.ClearScreen
}

func (m *Model) applyTaskForm() error {
	s := m.activeStore()
	if s == nil {
		return listservice.ErrNoActiveList
	}

	fs := m.FormState
	deadline, err := models.ParseDeadline(strings.TrimSpace(fs.Deadline))
	if err != nil {
		return err
	}
	category := models.StringPtr(fs.Category)

	n := fs.EditingNumber
	if n == 0 {
		if _, err := s.Add(m.ctx, taskservice.CreateTaskRequest{
			Description: fs.Description,
			Deadline:    deadline,
			Priority:    fs.Priority,
			Category:    category,
		}); err != nil {
			return err
		}
		m.filter = taskservice.FilterAll
		m.UiState.SetSelectedTask(s.Len()-1, s.Len())
		return nil
	}

	if err := s.Edit(m.ctx, n, fs.Description); err != nil {
		return err
	}
	if err := s.SetDeadline(m.ctx, n, deadline); err != nil {
		return err
	}
	if err := s.SetPriority(m.ctx, n, fs.Priority); err != nil {
		return err
	}
	return s.SetCategory(m.ctx, n, category)
}
