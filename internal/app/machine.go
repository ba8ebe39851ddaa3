// Package app holds the todo application's state machine. It maps input
// events to screen transitions and to mutations of the todo list it owns.
package app

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/jask/todotui/internal/todo"
)

// Options configures a Machine.
type Options struct {
	// Title labels the todo list.
	Title string
	// SimilarDistance is the edit distance under which a new title is
	// reported as similar to an existing one. Zero disables the hint.
	SimilarDistance int
	// Focus is the status column selected at start. New todos take the
	// status of the selected column.
	Focus todo.Status
	// Keys overrides the default key registry.
	Keys *KeyRegistry
}

// Machine is the application state. It owns its todo list; nothing else
// mutates it.
type Machine struct {
	running bool
	screen  Screen
	list    *todo.List
	keys    *KeyRegistry
	similar int

	// Main screen focus: a status column and a row inside it.
	column todo.Status
	row    int

	entry    []rune
	selected int
	message  string
}

func New(opts Options) *Machine {
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry()
	}
	focus := todo.Pending
	if opts.Focus.Valid() {
		focus = opts.Focus
	}
	return &Machine{
		running: true,
		screen:  ScreenMain,
		list:    todo.NewList(opts.Title),
		keys:    keys,
		similar: opts.SimilarDistance,
		column:  focus,
	}
}

func (m *Machine) Running() bool      { return m.running }
func (m *Machine) Screen() Screen     { return m.screen }
func (m *Machine) Keys() *KeyRegistry { return m.keys }

// Handle applies one input event. Only key presses change state; paste text
// is accepted while a new todo is being entered. Everything else is ignored.
func (m *Machine) Handle(ev Event) {
	if !m.running {
		return
	}
	switch e := ev.(type) {
	case KeyEvent:
		if e.Kind != KeyPress {
			return
		}
		m.onKey(e)
	case PasteEvent:
		if m.screen == ScreenNewTodo {
			m.insert(e.Text)
		}
	case MouseEvent, ResizeEvent:
	}
}

func (m *Machine) onKey(k KeyEvent) {
	if isQuitKey(k) {
		m.quit()
		return
	}
	b := m.keys.Lookup(k.String(), m.screen.Scope())
	switch m.screen {
	case ScreenMain:
		m.onMainKey(b)
	case ScreenNewTodo:
		m.onEntryKey(k, b)
	case ScreenRemoveTodo:
		m.onRemoveKey(k, b)
	}
}

// isQuitKey matches Esc, q with any modifiers, and ctrl+c in either case.
func isQuitKey(k KeyEvent) bool {
	switch {
	case k.Code == KeyEsc:
		return true
	case k.Code == KeyRune && k.Rune == 'q':
		return true
	case k.Code == KeyRune && k.Mods.Has(ModCtrl) && (k.Rune == 'c' || k.Rune == 'C'):
		return true
	}
	return false
}

func (m *Machine) quit() {
	m.running = false
}

func (m *Machine) onMainKey(b *Binding) {
	if b == nil {
		return
	}
	switch b.Action {
	case actionNew:
		m.entry = m.entry[:0]
		m.message = ""
		m.screen = ScreenNewTodo
	case actionRemove:
		if m.list.Len() == 0 {
			m.message = "nothing to remove"
			return
		}
		m.selected = 0
		if t, ok := m.focused(); ok {
			m.selected = indexOf(m.list.All(), t)
		}
		m.message = ""
		m.screen = ScreenRemoveTodo
	case actionUp:
		if m.row > 0 {
			m.row--
		}
	case actionDown:
		if m.row < len(m.list.GetByStatus(m.column))-1 {
			m.row++
		}
	case actionPrevColumn:
		if m.column > todo.Pending {
			m.column--
			m.clampRow()
		}
	case actionNextColumn:
		if m.column < todo.Done {
			m.column++
			m.clampRow()
		}
	case actionAdvance:
		m.moveFocused(todo.Status.Next)
	case actionRetreat:
		m.moveFocused(todo.Status.Prev)
	}
}

func (m *Machine) moveFocused(step func(todo.Status) todo.Status) {
	t, ok := m.focused()
	if !ok {
		return
	}
	next := step(t.Status())
	if err := m.list.SetStatus(t.ID(), next); err != nil {
		m.swallow("set status", err)
		return
	}
	m.message = fmt.Sprintf("moved %q to %s", t.Title(), next)
	m.focus(t)
}

func (m *Machine) onEntryKey(k KeyEvent, b *Binding) {
	if b == nil {
		if k.printable() {
			m.entry = append(m.entry, k.Rune)
		}
		return
	}
	switch b.Action {
	case actionSubmit:
		m.submit()
	case actionBackspace:
		if len(m.entry) == 0 {
			m.screen = ScreenMain
			return
		}
		m.entry = m.entry[:len(m.entry)-1]
	case actionClear:
		m.entry = m.entry[:0]
	}
}

func (m *Machine) insert(text string) {
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			m.entry = append(m.entry, ' ')
		case unicode.IsPrint(r):
			m.entry = append(m.entry, r)
		}
	}
}

func (m *Machine) submit() {
	title := strings.TrimSpace(string(m.entry))
	m.entry = m.entry[:0]
	m.screen = ScreenMain
	if title == "" {
		return
	}
	similar, found := m.list.FindSimilar(title, m.similar)
	id := m.list.Add(title, m.column)
	m.message = fmt.Sprintf("added %q to %s", title, m.column)
	if found {
		m.message += fmt.Sprintf(" (similar to %q)", similar.Title())
	}
	if t, ok := m.list.Get(id); ok {
		m.focus(t)
	}
}

func (m *Machine) onRemoveKey(k KeyEvent, b *Binding) {
	all := m.list.All()
	if b == nil {
		if k.Code == KeyRune && k.Mods == 0 && k.Rune >= '1' && k.Rune <= '9' {
			if i := int(k.Rune - '1'); i < len(all) {
				m.selected = i
			}
		}
		return
	}
	switch b.Action {
	case actionUp:
		if m.selected > 0 {
			m.selected--
		}
	case actionDown:
		if m.selected < len(all)-1 {
			m.selected++
		}
	case actionTop:
		m.selected = 0
	case actionBottom:
		m.selected = max(len(all)-1, 0)
	case actionConfirm:
		m.screen = ScreenMain
		if m.selected < 0 || m.selected >= len(all) {
			return
		}
		t := all[m.selected]
		if err := m.list.Remove(t.ID()); err != nil {
			m.swallow("remove", err)
			return
		}
		m.message = fmt.Sprintf("removed %q", t.Title())
		m.clampRow()
	case actionCancel:
		m.screen = ScreenMain
	}
}

// swallow records a store error that has no user-visible effect.
func (m *Machine) swallow(op string, err error) {
	if errors.Is(err, todo.ErrNotFound) {
		log.Printf("%s: ignoring: %v", op, err)
		return
	}
	log.Printf("%s: %v", op, err)
}

func (m *Machine) focused() (todo.Todo, bool) {
	col := m.list.GetByStatus(m.column)
	if m.row < 0 || m.row >= len(col) {
		return todo.Todo{}, false
	}
	return col[m.row], true
}

// focus moves the Main selection onto t, wherever its status puts it.
func (m *Machine) focus(t todo.Todo) {
	cur, ok := m.list.Get(t.ID())
	if !ok {
		m.clampRow()
		return
	}
	m.column = cur.Status()
	m.row = indexOf(m.list.GetByStatus(m.column), cur)
}

func (m *Machine) clampRow() {
	n := len(m.list.GetByStatus(m.column))
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func indexOf(todos []todo.Todo, t todo.Todo) int {
	for i, c := range todos {
		if c.ID() == t.ID() {
			return i
		}
	}
	return 0
}
