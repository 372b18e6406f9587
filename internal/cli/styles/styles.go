package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	ValueStyle    lipgloss.Style

	// Task state styles
	DoneStyle     lipgloss.Style
	PendingStyle  lipgloss.Style
	DueTodayStyle lipgloss.Style
	OverdueStyle  lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Done)).
		Strikethrough(true)

	PendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Pending))

	DueTodayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.DueToday))

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Overdue))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// TaskStyle picks the style of a task line: done tasks are struck through,
// pending tasks are colored by how close their deadline is
func TaskStyle(t models.Task, today models.Date) lipgloss.Style {
	switch {
	case t.Completed:
		return DoneStyle
	case t.Deadline == nil:
		return PendingStyle
	case t.Deadline.Before(today):
		return OverdueStyle
	case t.Deadline.Compare(today) == 0:
		return DueTodayStyle
	default:
		return PendingStyle
	}
}

// RenderTask renders "  n. [✓] description, Deadline: ..." colored by state
func RenderTask(n int, t models.Task, today models.Date) string {
	return fmt.Sprintf("%3d. %s", n, TaskStyle(t, today).Render(t.String()))
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}
