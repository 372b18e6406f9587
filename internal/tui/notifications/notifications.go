package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/listo/internal/tui/state"
	"github.com/thenoetrevino/listo/internal/tui/theme"
)

type style struct {
	icon       string
	foreground string
	background string
}

func levelStyle(level state.NotificationLevel) style {
	switch level {
	case state.LevelWarning:
		return style{icon: "⏰", foreground: theme.DueToday, background: ""}
	case state.LevelError:
		return style{icon: "❌", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return style{icon: "🔔", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// RenderInline renders a compact single-line notification
func RenderInline(n state.Notification) string {
	s := levelStyle(n.Level)

	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Padding(0, 1)
	if s.background != "" {
		st = st.Background(lipgloss.Color(s.background))
	}
	return st.Render(s.icon + " " + n.Message)
}
