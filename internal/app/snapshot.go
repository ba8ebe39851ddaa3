package app

import "github.com/jask/todotui/internal/todo"

// Column is the todos sharing one status, in list order.
type Column struct {
	Status todo.Status
	Todos  []todo.Todo
}

// Snapshot is a read-only projection of the machine for rendering.
type Snapshot struct {
	Screen  Screen
	Running bool
	Title   string
	Columns []Column
	All     []todo.Todo
	Lines   []string

	// Focus is the highlighted column on the main screen; Row is -1 when the
	// column is empty.
	Focus todo.Status
	Row   int

	Entry    string
	Selected int
	Message  string
}

func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Screen:   m.screen,
		Running:  m.running,
		Title:    m.list.Title(),
		All:      m.list.All(),
		Lines:    m.list.RenderLines(),
		Focus:    m.column,
		Row:      -1,
		Entry:    string(m.entry),
		Selected: m.selected,
		Message:  m.message,
	}
	for _, st := range todo.Statuses() {
		s.Columns = append(s.Columns, Column{Status: st, Todos: m.list.GetByStatus(st)})
	}
	if _, ok := m.focused(); ok {
		s.Row = m.row
	}
	return s
}
