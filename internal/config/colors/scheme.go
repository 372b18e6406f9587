package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset" toml:"preset"`

	// Primary accent color (selection, titles)
	Accent string `yaml:"accent" toml:"accent"`

	// Task state colors
	Done     string `yaml:"done" toml:"done"`
	Pending  string `yaml:"pending" toml:"pending"`
	DueToday string `yaml:"due_today" toml:"due_today"`
	Overdue  string `yaml:"overdue" toml:"overdue"`

	// Text colors
	Title  string `yaml:"title" toml:"title"`
	Subtle string `yaml:"subtle" toml:"subtle"` // placeholders, help
	Normal string `yaml:"normal" toml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg" toml:"info_fg"`
	InfoBg  string `yaml:"info_bg" toml:"info_bg"`
	ErrorFg string `yaml:"error_fg" toml:"error_fg"`
	ErrorBg string `yaml:"error_bg" toml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values from the preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Done, preset.Done)
	fill(&c.Pending, preset.Pending)
	fill(&c.DueToday, preset.DueToday)
	fill(&c.Overdue, preset.Overdue)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom copies every non-empty value of other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Done, other.Done)
	merge(&c.Pending, other.Pending)
	merge(&c.DueToday, other.DueToday)
	merge(&c.Overdue, other.Overdue)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
