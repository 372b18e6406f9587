package config

// KeyMappings defines all configurable key bindings of the TUI
type KeyMappings struct {
	// Tasks
	AddTask      string `yaml:"add_task" toml:"add_task"`
	EditTask     string `yaml:"edit_task" toml:"edit_task"`
	DeleteTask   string `yaml:"delete_task" toml:"delete_task"`
	ToggleTask   string `yaml:"toggle_task" toml:"toggle_task"`
	SetDeadline  string `yaml:"set_deadline" toml:"set_deadline"`
	SetPriority  string `yaml:"set_priority" toml:"set_priority"`
	SetCategory  string `yaml:"set_category" toml:"set_category"`
	SortTasks    string `yaml:"sort_tasks" toml:"sort_tasks"`
	SortPriority string `yaml:"sort_priority" toml:"sort_priority"`
	CycleFilter  string `yaml:"cycle_filter" toml:"cycle_filter"`
	SaveForm     string `yaml:"save_form" toml:"save_form"`

	// Lists
	CreateList string `yaml:"create_list" toml:"create_list"`
	DeleteList string `yaml:"delete_list" toml:"delete_list"`
	NextList   string `yaml:"next_list" toml:"next_list"`
	PrevList   string `yaml:"prev_list" toml:"prev_list"`

	// Navigation
	PrevTask string `yaml:"prev_task" toml:"prev_task"`
	NextTask string `yaml:"next_task" toml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help" toml:"show_help"`
	Quit     string `yaml:"quit" toml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:      "a",
		EditTask:     "e",
		DeleteTask:   "d",
		ToggleTask:   "space",
		SetDeadline:  "D",
		SetPriority:  "p",
		SetCategory:  "c",
		SortTasks:    "s",
		SortPriority: "S",
		CycleFilter:  "f",
		SaveForm:     "ctrl+s",

		// Lists
		CreateList: "N",
		DeleteList: "X",
		NextList:   "}",
		PrevList:   "{",

		// Navigation
		PrevTask: "k",
		NextTask: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddTask, d.AddTask)
	fill(&k.EditTask, d.EditTask)
	fill(&k.DeleteTask, d.DeleteTask)
	fill(&k.ToggleTask, d.ToggleTask)
	fill(&k.SetDeadline, d.SetDeadline)
	fill(&k.SetPriority, d.SetPriority)
	fill(&k.SetCategory, d.SetCategory)
	fill(&k.SortTasks, d.SortTasks)
	fill(&k.SortPriority, d.SortPriority)
	fill(&k.CycleFilter, d.CycleFilter)
	fill(&k.SaveForm, d.SaveForm)
	fill(&k.CreateList, d.CreateList)
	fill(&k.DeleteList, d.DeleteList)
	fill(&k.NextList, d.NextList)
	fill(&k.PrevList, d.PrevList)
	fill(&k.PrevTask, d.PrevTask)
	fill(&k.NextTask, d.NextTask)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
