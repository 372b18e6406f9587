package state

// Mode represents the current interaction mode of the TUI
type Mode int

const (
	NormalMode  Mode = iota // browsing tasks
	InputMode               // typing into the prompt
	FormMode                // filling the task form
	ConfirmMode             // waiting for y/n
	HelpMode                // showing key bindings
)

func (m Mode) String() string {
	switch m {
	case InputMode:
		return "input"
	case FormMode:
		return "form"
	case ConfirmMode:
		return "confirm"
	case HelpMode:
		return "help"
	default:
		return "normal"
	}
}

// InputAction names what a submitted prompt does
type InputAction int

const (
	ActionNone InputAction = iota
	ActionSetDeadline
	ActionSetPriority
	ActionSetCategory
	ActionCreateList
)

// ConfirmAction names what a confirmed prompt does
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmDeleteTask
	ConfirmDeleteList
)

// UIState manages UI-specific state: mode, selection and dimensions
type UIState struct {
	mode          Mode
	inputAction   InputAction
	confirmAction ConfirmAction
	prompt        string

	selectedTask int
	width        int
	height       int
}

// NewUIState creates a new UIState in normal mode
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) Mode() Mode                   { return s.mode }
func (s *UIState) InputAction() InputAction     { return s.inputAction }
func (s *UIState) ConfirmAction() ConfirmAction { return s.confirmAction }
func (s *UIState) Prompt() string               { return s.prompt }
func (s *UIState) SelectedTask() int            { return s.selectedTask }
func (s *UIState) Width() int                   { return s.width }
func (s *UIState) Height() int                  { return s.height }

// SetMode switches mode; leaving input or confirm mode forgets the pending action
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
	if mode != InputMode {
		s.inputAction = ActionNone
	}
	if mode != ConfirmMode {
		s.confirmAction = ConfirmNone
	}
	if mode == NormalMode || mode == HelpMode {
		s.prompt = ""
	}
}

// StartInput enters input mode for action with the given prompt
func (s *UIState) StartInput(action InputAction, prompt string) {
	s.SetMode(InputMode)
	s.inputAction = action
	s.prompt = prompt
}

// StartConfirm enters confirm mode for action with the given question
func (s *UIState) StartConfirm(action ConfirmAction, prompt string) {
	s.SetMode(ConfirmMode)
	s.confirmAction = action
	s.prompt = prompt
}

// SetSelectedTask selects index i, clamped to [0, count)
func (s *UIState) SetSelectedTask(i, count int) {
	switch {
	case count == 0 || i < 0:
		s.selectedTask = 0
	case i >= count:
		s.selectedTask = count - 1
	default:
		s.selectedTask = i
	}
}

// SetWindowSize updates the terminal dimensions
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}
