package tui

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/listo/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.NextTask, "down":
		m.UiState.SetSelectedTask(m.UiState.SelectedTask()+1, len(m.visibleNumbers()))
		return m, nil
	case km.PrevTask, "up":
		m.UiState.SetSelectedTask(m.UiState.SelectedTask()-1, len(m.visibleNumbers()))
		return m, nil
	case km.AddTask:
		return m.startAddForm()
	case km.EditTask:
		return m.startEditForm()
	case km.SetDeadline:
		t, ok := m.selectedTask()
		value := ""
		if ok && t.Deadline != nil {
			value = t.Deadline.String()
		}
		return m.startTaskInput(state.ActionSetDeadline, "Deadline (YYYY-MM-DD, empty clears)", value, !ok)
	case km.SetPriority:
		t, ok := m.selectedTask()
		return m.startTaskInput(state.ActionSetPriority, "Priority (low, medium, high)", t.Priority, !ok)
	case km.SetCategory:
		t, ok := m.selectedTask()
		value := ""
		if ok && t.Category != nil {
			value = *t.Category
		}
		return m.startTaskInput(state.ActionSetCategory, "Category (empty clears)", value, !ok)
	case km.ToggleTask:
		return m.handleToggleTask()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.SortTasks:
		return m.handleSortTasks()
	case km.SortPriority:
		return m.handleSortPriority()
	case km.CycleFilter:
		m.filter = m.filter.Next()
		m.UiState.SetSelectedTask(0, 0)
		return m, nil
	case km.CreateList:
		return m.startInput(state.ActionCreateList, "New list", "")
	case km.DeleteList:
		return m.handleDeleteList()
	case km.NextList:
		return m.handleSwitchList(1)
	case km.PrevList:
		return m.handleSwitchList(-1)
	}

	return m, nil
}

func (m Model) startInput(action state.InputAction, prompt, value string) (tea.Model, tea.Cmd) {
	m.UiState.StartInput(action, prompt)
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// startTaskInput opens the prompt for an action on the active list.
// needsTask rejects the action when no task is selected.
func (m Model) startTaskInput(action state.InputAction, prompt, value string, needsTask bool) (tea.Model, tea.Cmd) {
	if m.activeStore() == nil {
		m.notifyInfo(fmt.Sprintf("Create a list first (%s)", m.Config.KeyMappings.CreateList))
		return m, nil
	}
	if needsTask {
		m.notifyInfo("No task selected")
		return m, nil
	}
	return m.startInput(action, prompt, value)
}

func (m Model) handleToggleTask() (tea.Model, tea.Cmd) {
	t, ok := m.selectedTask()
	if !ok {
		return m, nil
	}

	s := m.activeStore()
	n := m.selectedNumber()
	var err error
	if t.Completed {
		err = s.MarkIncomplete(m.ctx, n)
	} else {
		err = s.MarkCompleted(m.ctx, n)
	}
	if err != nil {
		m.notifyError(err)
	}
	m.clampSelection()
	return m, nil
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	t, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	m.UiState.StartConfirm(state.ConfirmDeleteTask, fmt.Sprintf("Delete task '%s'? (y/n)", t.Description))
	return m, nil
}

func (m Model) handleSortTasks() (tea.Model, tea.Cmd) {
	s := m.activeStore()
	if s == nil {
		return m, nil
	}
	s.Sort(m.completedFirst)
	if m.completedFirst {
		m.notifyInfo("Sorted: completed first")
	} else {
		m.notifyInfo("Sorted: pending first")
	}
	m.completedFirst = !m.completedFirst
	return m, nil
}

func (m Model) handleSortPriority() (tea.Model, tea.Cmd) {
	s := m.activeStore()
	if s == nil {
		return m, nil
	}
	s.SortByPriority()
	m.notifyInfo("Sorted: priority")
	return m, nil
}

func (m Model) handleDeleteList() (tea.Model, tea.Cmd) {
	name := m.Lists.ActiveName()
	if name == "" {
		return m, nil
	}
	m.UiState.StartConfirm(state.ConfirmDeleteList, fmt.Sprintf("Delete list '%s' and all its tasks? (y/n)", name))
	return m, nil
}

// handleSwitchList moves the selection delta lists forward, wrapping around
func (m Model) handleSwitchList(delta int) (tea.Model, tea.Cmd) {
	names := m.Lists.Names()
	if len(names) == 0 {
		return m, nil
	}

	i := slices.Index(names, m.Lists.ActiveName())
	next := (i + delta + len(names)) % len(names)
	if i < 0 {
		next = 0
	}
	m.selectList(names[next])
	return m, nil
}
