package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Done:     "#A8A8A8",
		Pending:  "#FFFFFF",
		DueToday: "#FFFFFF",
		Overdue:  "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#303030",
		ErrorFg: "#000000",
		ErrorBg: "#FFFFFF",
	}
}
