package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/listo/internal/models"
	"github.com/thenoetrevino/listo/internal/tui/theme"
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
}

func tabStyle(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(theme.Accent)).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(theme.Accent))
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(theme.Subtle)).
		Border(lipgloss.HiddenBorder(), false, false, true, false)
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func cursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))
}

func promptBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)
}

// taskStyle colors a task line by completion and deadline
func taskStyle(t models.Task, today models.Date) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch {
	case t.Completed:
		return st.Foreground(lipgloss.Color(theme.Done)).Strikethrough(true)
	case t.Deadline == nil:
		return st.Foreground(lipgloss.Color(theme.Pending))
	case t.Deadline.Before(today):
		return st.Bold(true).Foreground(lipgloss.Color(theme.Overdue))
	case t.Deadline.Compare(today) == 0:
		return st.Bold(true).Foreground(lipgloss.Color(theme.DueToday))
	default:
		return st.Foreground(lipgloss.Color(theme.Pending))
	}
}
