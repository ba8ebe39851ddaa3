package app

// Screen is the active UI mode. It decides what is drawn and how keys are read.
type Screen string

const (
	ScreenMain       Screen = "main"
	ScreenNewTodo    Screen = "new_todo"
	ScreenRemoveTodo Screen = "remove_todo"
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "Main"
	case ScreenNewTodo:
		return "New todo"
	case ScreenRemoveTodo:
		return "Remove todo"
	default:
		return string(s)
	}
}

// Scope is the key registry scope for the screen.
func (s Screen) Scope() string { return string(s) }
