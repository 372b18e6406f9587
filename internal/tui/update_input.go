package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/listo/internal/models"
	listservice "github.com/thenoetrevino/listo/internal/services/list"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.UiState.SetMode(state.NormalMode)
}

// submitInput applies the prompt's value. A rejected value keeps the
// prompt open so it can be corrected.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	if err := m.applyInput(m.UiState.InputAction(), value); err != nil {
		m.notifyError(err)
		return m, nil
	}
	m.closeInput()
	m.clampSelection()
	return m, nil
}

func (m *Model) applyInput(action state.InputAction, value string) error {
	if action == state.ActionCreateList {
		if _, err := m.Lists.Create(m.ctx, value); err != nil {
			return err
		}
		m.UiState.SetSelectedTask(0, 0)
		return nil
	}

	s := m.activeStore()
	if s == nil {
		return listservice.ErrNoActiveList
	}
	n := m.selectedNumber()

	switch action {
	case state.ActionSetDeadline:
		deadline, err := models.ParseDeadline(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		return s.SetDeadline(m.ctx, n, deadline)
	case state.ActionSetPriority:
		return s.SetPriority(m.ctx, n, strings.TrimSpace(value))
	case state.ActionSetCategory:
		return s.SetCategory(m.ctx, n, models.StringPtr(value))
	}
	return fmt.Errorf("unknown input action %d", action)
}

func (m Model) handleConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	action := m.UiState.ConfirmAction()
	m.UiState.SetMode(state.NormalMode)

	switch msg.String() {
	case "y", "Y":
	default:
		return m, nil
	}

	switch action {
	case state.ConfirmDeleteTask:
		if s := m.activeStore(); s != nil {
			if err := s.Delete(m.ctx, m.selectedNumber()); err != nil {
				m.notifyError(err)
			}
		}
		m.clampSelection()
	case state.ConfirmDeleteList:
		name := m.Lists.ActiveName()
		if err := m.Lists.Delete(m.ctx, name); err != nil {
			m.notifyError(err)
			return m, nil
		}
		m.notifyInfo(fmt.Sprintf("Deleted list '%s'", name))
		if names := m.Lists.Names(); len(names) > 0 {
			m.selectList(names[0])
		}
	}
	return m, nil
}
