package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/listo/internal/tui/state"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWindowSize(msg.Width, msg.Height)
		m.input.SetWidth(max(msg.Width-10, 10))
		if m.UiState.Mode() == state.FormMode {
			return m.updateTaskForm(msg)
		}
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.UiState.Mode() {
		case state.FormMode:
			return m.updateTaskForm(msg)
		case state.InputMode:
			return m.handleInputMode(msg)
		case state.ConfirmMode:
			return m.handleConfirmMode(msg)
		case state.HelpMode:
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		default:
			return m.handleNormalMode(msg)
		}
	}

	// forms need every message, not just key presses
	if m.UiState.Mode() == state.FormMode {
		return m.updateTaskForm(msg)
	}
	if m.UiState.Mode() == state.InputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}
