package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	taskservice "github.com/thenoetrevino/listo/internal/services/task"
	"github.com/thenoetrevino/listo/internal/tui/notifications"
	"github.com/thenoetrevino/listo/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.UiState.Mode() == state.HelpMode {
		view.Content = lipgloss.Place(
			m.UiState.Width(), m.UiState.Height(),
			lipgloss.Center, lipgloss.Center,
			promptBoxStyle().Render(m.helpText()),
		)
		return view
	}

	sections := []string{m.viewTabs(), m.viewTasks()}
	if footer := m.viewFooter(); footer != "" {
		sections = append(sections, footer)
	}
	view.Content = lipgloss.JoinVertical(lipgloss.Left, sections...)
	return view
}

// viewTabs renders one tab per list with the active one highlighted
func (m Model) viewTabs() string {
	names := m.Lists.Names()
	if len(names) == 0 {
		return titleStyle().Render("listo")
	}

	tabs := make([]string, 0, len(names))
	for _, name := range names {
		tabs = append(tabs, tabStyle(name == m.Lists.ActiveName()).Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) viewTasks() string {
	s := m.activeStore()
	if s == nil {
		return subtleStyle().Render(
			fmt.Sprintf("No list selected. Press %s to create one.", m.Config.KeyMappings.CreateList))
	}

	var b strings.Builder
	b.WriteString(subtleStyle().Render(fmt.Sprintf("Filter: %s", m.filter)))
	b.WriteString("\n\n")

	numbers := m.visibleNumbers()
	if len(numbers) == 0 {
		b.WriteString(subtleStyle().Render(
			fmt.Sprintf("No tasks. Press %s to add one.", m.Config.KeyMappings.AddTask)))
		return b.String()
	}

	all := s.View(taskservice.FilterAll)
	for i, n := range numbers {
		t := all[n-1]
		cursor := "  "
		if i == m.UiState.SelectedTask() {
			cursor = cursorStyle().Render("› ")
		}
		line := fmt.Sprintf("%s%3d. %s", cursor, n, taskStyle(t, m.today).Render(t.String()))
		b.WriteString(line)
		if i < len(numbers)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewFooter() string {
	var parts []string

	switch m.UiState.Mode() {
	case state.InputMode:
		parts = append(parts, promptBoxStyle().Render(m.UiState.Prompt()+"\n"+m.input.View()))
	case state.FormMode:
		if form := m.FormState.TaskForm; form != nil {
			parts = append(parts, promptBoxStyle().Render(m.formTitle()+"\n\n"+form.View()))
		}
	case state.ConfirmMode:
		parts = append(parts, promptBoxStyle().Render(m.UiState.Prompt()))
	}

	for _, n := range m.NotificationState.All() {
		parts = append(parts, notifications.RenderInline(n))
	}

	if m.UiState.Mode() == state.NormalMode {
		parts = append(parts, subtleStyle().Render(
			fmt.Sprintf("%s help • %s quit", m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit)))
	}

	if len(parts) == 0 {
		return ""
	}
	return "\n" + strings.Join(parts, "\n")
}
