package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// DefaultTitle is used when a list is created without a title.
const DefaultTitle = "Todos"

// ErrNotFound is returned when an operation addresses an id the list does not hold.
var ErrNotFound = errors.New("todo not found")

// List is the in-memory todo store. Insertion order is display order.
// It is not safe for concurrent use.
type List struct {
	title string
	todos []Todo
}

// NewList creates an empty list.
func NewList(title string) *List {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	return &List{title: title}
}

func (l *List) Title() string { return l.title }

func (l *List) Len() int { return len(l.todos) }

// Add appends a new todo and returns its id.
func (l *List) Add(title string, status Status) uuid.UUID {
	t := New(title, status)
	l.todos = append(l.todos, t)
	return t.id
}

// Remove deletes the todo with the given id, keeping the order of the rest.
func (l *List) Remove(id uuid.UUID) error {
	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	l.todos = append(l.todos[:i], l.todos[i+1:]...)
	return nil
}

// SetStatus updates the status of the todo with the given id.
func (l *List) SetStatus(id uuid.UUID, status Status) error {
	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("set status %s: %w", id, ErrNotFound)
	}
	l.todos[i].status = status
	return nil
}

// Get returns a copy of the todo with the given id.
func (l *List) Get(id uuid.UUID) (Todo, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Todo{}, false
	}
	return l.todos[i], true
}

// GetByStatus returns, in list order, every todo with the given status.
func (l *List) GetByStatus(status Status) []Todo {
	out := make([]Todo, 0, len(l.todos))
	for _, t := range l.todos {
		if t.status == status {
			out = append(out, t)
		}
	}
	return out
}

// All returns a copy of every todo in list order.
func (l *List) All() []Todo {
	return append([]Todo(nil), l.todos...)
}

// RenderLines produces the plain list view: a banner, one numbered line per
// todo and a trailing blank line.
func (l *List) RenderLines() []string {
	lines := make([]string, 0, len(l.todos)+2)
	lines = append(lines, fmt.Sprintf("*** %s ***", l.title))
	for i, t := range l.todos {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, t.title))
	}
	return append(lines, "")
}

// FindSimilar returns the existing todo whose title is closest to title, as
// long as it is within maxDistance edits. Comparison ignores case and
// surrounding space. A maxDistance of zero or less disables the search.
func (l *List) FindSimilar(title string, maxDistance int) (Todo, bool) {
	if maxDistance <= 0 {
		return Todo{}, false
	}
	needle := strings.ToLower(strings.TrimSpace(title))
	if needle == "" {
		return Todo{}, false
	}
	best, bestDist := -1, maxDistance+1
	for i, t := range l.todos {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(strings.TrimSpace(t.title)))
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return Todo{}, false
	}
	return l.todos[best], true
}

func (l *List) indexOf(id uuid.UUID) int {
	for i, t := range l.todos {
		if t.id == id {
			return i
		}
	}
	return -1
}
