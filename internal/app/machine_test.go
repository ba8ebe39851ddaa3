package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/todotui/internal/todo"
)

func press(r rune) KeyEvent { return PressRune(r, 0) }

func typeText(m *Machine, s string) {
	for _, r := range s {
		m.Handle(press(r))
	}
}

func addTodo(t *testing.T, m *Machine, title string) {
	t.Helper()
	m.Handle(press('n'))
	require.Equal(t, ScreenNewTodo, m.Screen())
	typeText(m, title)
	m.Handle(Press(KeyEnter, 0))
	require.Equal(t, ScreenMain, m.Screen())
}

func TestStartFocus(t *testing.T) {
	m := New(Options{Title: "Work", Focus: todo.Done})
	require.Equal(t, todo.Done, m.Snapshot().Focus)

	addTodo(t, m, "ship")
	require.Empty(t, m.list.GetByStatus(todo.Pending))
	require.Len(t, m.list.GetByStatus(todo.Done), 1)

	m = New(Options{Focus: todo.Status(7)})
	require.Equal(t, todo.Pending, m.Snapshot().Focus)
}

func TestNewMachineStartsOnMain(t *testing.T) {
	m := New(Options{Title: "Work"})
	require.True(t, m.Running())
	require.Equal(t, ScreenMain, m.Screen())
	require.Equal(t, "Work", m.Snapshot().Title)
}

func TestNEntersNewTodo(t *testing.T) {
	m := New(Options{})
	m.Handle(press('n'))
	require.Equal(t, ScreenNewTodo, m.Screen())
	require.True(t, m.Running())
}

func TestQuitKeysFromEveryScreen(t *testing.T) {
	quitKeys := map[string]KeyEvent{
		"q":      press('q'),
		"esc":    Press(KeyEsc, 0),
		"ctrl+c": PressRune('c', ModCtrl),
		"ctrl+C": PressRune('C', ModCtrl),
		"alt+q":  PressRune('q', ModAlt),
	}
	enter := map[Screen]func(*Machine){
		ScreenMain:    func(*Machine) {},
		ScreenNewTodo: func(m *Machine) { m.Handle(press('n')) },
		ScreenRemoveTodo: func(m *Machine) {
			m.list.Add("a", todo.Pending)
			m.Handle(press('d'))
		},
	}
	for screen, setup := range enter {
		for name, k := range quitKeys {
			m := New(Options{})
			setup(m)
			require.Equal(t, screen, m.Screen())
			m.Handle(k)
			require.False(t, m.Running(), "%s on %s", name, screen)
		}
	}
}

func TestReleaseEventsAreIgnored(t *testing.T) {
	for _, setup := range []func(*Machine){
		func(*Machine) {},
		func(m *Machine) { m.Handle(press('n')) },
	} {
		m := New(Options{})
		setup(m)
		before := m.Snapshot()
		for _, k := range []KeyEvent{
			{Kind: KeyRelease, Code: KeyRune, Rune: 'q'},
			{Kind: KeyRelease, Code: KeyEsc},
			{Kind: KeyRelease, Code: KeyRune, Rune: 'n'},
			{Kind: KeyRelease, Code: KeyEnter},
			{Kind: KeyRepeat, Code: KeyRune, Rune: 'x'},
		} {
			m.Handle(k)
		}
		require.Equal(t, before, m.Snapshot())
	}
}

func TestNonKeyEventsAreIgnored(t *testing.T) {
	m := New(Options{})
	before := m.Snapshot()
	m.Handle(MouseEvent{X: 3, Y: 4})
	m.Handle(ResizeEvent{Width: 120, Height: 40})
	m.Handle(PasteEvent{Text: "ignored on main"})
	require.Equal(t, before, m.Snapshot())
}

func TestUnboundKeysAreNoOps(t *testing.T) {
	m := New(Options{})
	before := m.Snapshot()
	m.Handle(press('z'))
	m.Handle(Press(KeyEnter, 0))
	m.Handle(Press(KeyUnknown, 0))
	require.Equal(t, before, m.Snapshot())
}

func TestSubmitAddsWithFocusedStatus(t *testing.T) {
	m := New(Options{Title: "Work"})
	addTodo(t, m, "Buy milk")

	s := m.Snapshot()
	require.Len(t, s.All, 1)
	require.Equal(t, "Buy milk", s.All[0].Title())
	require.Equal(t, todo.Pending, s.All[0].Status())
	require.Equal(t, `added "Buy milk" to Pending`, s.Message)
	require.Equal(t, 0, s.Row)

	m.Handle(press('l'))
	m.Handle(press('l'))
	addTodo(t, m, "Call bank")
	done := m.Snapshot().Columns[2]
	require.Equal(t, todo.Done, done.Status)
	require.Len(t, done.Todos, 1)
	require.Equal(t, "Call bank", done.Todos[0].Title())
}

func TestEmptySubmitCancels(t *testing.T) {
	m := New(Options{})
	m.Handle(press('n'))
	typeText(m, "   ")
	m.Handle(Press(KeyEnter, 0))
	require.Equal(t, ScreenMain, m.Screen())
	require.Empty(t, m.Snapshot().All)
}

func TestEntryEditing(t *testing.T) {
	m := New(Options{})
	m.Handle(press('n'))
	typeText(m, "Buy milk")
	m.Handle(Press(KeyBackspace, 0))
	require.Equal(t, "Buy mil", m.Snapshot().Entry)

	m.Handle(PressRune('u', ModCtrl))
	require.Equal(t, "", m.Snapshot().Entry)

	m.Handle(PasteEvent{Text: "Call\nbank"})
	require.Equal(t, "Call bank", m.Snapshot().Entry)

	m.Handle(PressRune('x', ModAlt))
	require.Equal(t, "Call bank", m.Snapshot().Entry)

	m.Handle(Press(KeyEnter, 0))
	require.Equal(t, "Call bank", m.Snapshot().All[0].Title())
}

func TestBackspaceOnEmptyEntryCancels(t *testing.T) {
	m := New(Options{})
	m.Handle(press('n'))
	typeText(m, "a")
	m.Handle(Press(KeyBackspace, 0))
	require.Equal(t, ScreenNewTodo, m.Screen())
	m.Handle(Press(KeyBackspace, 0))
	require.Equal(t, ScreenMain, m.Screen())
	require.Empty(t, m.Snapshot().All)
}

func TestSimilarTitleHint(t *testing.T) {
	m := New(Options{SimilarDistance: 2})
	addTodo(t, m, "Buy milk")
	addTodo(t, m, "buy silk")
	require.Contains(t, m.Snapshot().Message, `(similar to "Buy milk")`)
	require.Len(t, m.Snapshot().All, 2)
}

func TestRemoveSelectionAndConfirm(t *testing.T) {
	m := New(Options{Title: "Work"})
	addTodo(t, m, "a")
	addTodo(t, m, "b")
	addTodo(t, m, "c")

	// Focus is on the last added todo.
	m.Handle(press('d'))
	require.Equal(t, ScreenRemoveTodo, m.Screen())
	require.Equal(t, 2, m.Snapshot().Selected)

	m.Handle(press('k'))
	require.Equal(t, 1, m.Snapshot().Selected)
	m.Handle(Press(KeyEnter, 0))

	s := m.Snapshot()
	require.Equal(t, ScreenMain, s.Screen)
	require.Len(t, s.All, 2)
	require.Equal(t, "a", s.All[0].Title())
	require.Equal(t, "c", s.All[1].Title())
	require.Equal(t, `removed "b"`, s.Message)
}

func TestRemoveDigitsAndBounds(t *testing.T) {
	m := New(Options{})
	addTodo(t, m, "a")
	addTodo(t, m, "b")

	m.Handle(press('x'))
	m.Handle(press('1'))
	require.Equal(t, 0, m.Snapshot().Selected)
	m.Handle(press('9'))
	require.Equal(t, 0, m.Snapshot().Selected)
	m.Handle(press('k'))
	require.Equal(t, 0, m.Snapshot().Selected)
	m.Handle(press('G'))
	require.Equal(t, 1, m.Snapshot().Selected)
	m.Handle(press('j'))
	require.Equal(t, 1, m.Snapshot().Selected)
	m.Handle(press('g'))
	require.Equal(t, 0, m.Snapshot().Selected)

	m.Handle(Press(KeyBackspace, 0))
	require.Equal(t, ScreenMain, m.Screen())
	require.Len(t, m.Snapshot().All, 2)
}

func TestRemoveOnEmptyListStaysOnMain(t *testing.T) {
	m := New(Options{})
	m.Handle(press('d'))
	require.Equal(t, ScreenMain, m.Screen())
	require.Equal(t, "nothing to remove", m.Snapshot().Message)
}

func TestRemoveStaleSelectionIsNoOp(t *testing.T) {
	m := New(Options{})
	addTodo(t, m, "a")
	m.Handle(press('d'))
	// Change the list behind the selection so the confirm misses.
	require.NoError(t, m.list.Remove(m.list.All()[0].ID()))
	m.list.Add("b", todo.Pending)
	m.selected = 5

	m.Handle(Press(KeyEnter, 0))
	require.Equal(t, ScreenMain, m.Screen())
	require.True(t, m.Running())
	require.Len(t, m.Snapshot().All, 1)
}

func TestAdvanceAndRetreatStatus(t *testing.T) {
	m := New(Options{})
	addTodo(t, m, "a")
	addTodo(t, m, "b")
	m.Handle(press('k'))

	m.Handle(PressRune(' ', 0))
	s := m.Snapshot()
	require.Equal(t, todo.InProgress, s.Focus)
	require.Equal(t, 0, s.Row)
	require.Equal(t, "a", s.Columns[1].Todos[0].Title())
	require.Equal(t, []string{"b"}, []string{s.Columns[0].Todos[0].Title()})

	m.Handle(press('s'))
	require.Equal(t, todo.Done, m.Snapshot().Focus)
	m.Handle(press('s'))
	require.Equal(t, todo.Pending, m.Snapshot().Focus)
	m.Handle(press('S'))
	require.Equal(t, todo.Done, m.Snapshot().Focus)

	all := m.Snapshot().All
	require.Equal(t, "a", all[0].Title())
	require.Equal(t, todo.Done, all[0].Status())
	require.Equal(t, todo.Pending, all[1].Status())
}

func TestAdvanceOnEmptyColumnIsNoOp(t *testing.T) {
	m := New(Options{})
	m.Handle(press('l'))
	before := m.Snapshot()
	m.Handle(press('s'))
	require.Equal(t, before, m.Snapshot())
	require.Equal(t, -1, before.Row)
}

func TestColumnNavigationClamps(t *testing.T) {
	m := New(Options{})
	m.Handle(press('h'))
	require.Equal(t, todo.Pending, m.Snapshot().Focus)
	m.Handle(Press(KeyTab, 0))
	m.Handle(Press(KeyRight, 0))
	m.Handle(Press(KeyRight, 0))
	require.Equal(t, todo.Done, m.Snapshot().Focus)
	m.Handle(Press(KeyTab, ModShift))
	require.Equal(t, todo.InProgress, m.Snapshot().Focus)
}

func TestEventsAfterQuitAreIgnored(t *testing.T) {
	m := New(Options{})
	m.Handle(press('q'))
	m.Handle(press('n'))
	require.False(t, m.Running())
	require.Equal(t, ScreenMain, m.Screen())
}
