package theme

import "github.com/thenoetrevino/listo/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent   string
	Done     string
	Pending  string
	DueToday string
	Overdue  string
	Title    string
	Subtle   string
	Normal   string
	InfoFg   string
	InfoBg   string
	ErrorFg  string
	ErrorBg  string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Done = colors.Done
	Pending = colors.Pending
	DueToday = colors.DueToday
	Overdue = colors.Overdue
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
