package todo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Status is the progress state of a todo.
type Status int

const (
	Pending Status = iota
	InProgress
	Done
)

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Done}
}

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case InProgress:
		return "In Progress"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s >= Pending && s <= Done
}

// Next returns the following status, wrapping from Done to Pending.
func (s Status) Next() Status {
	return Status((int(s) + 1) % len(Statuses()))
}

// Prev returns the preceding status, wrapping from Pending to Done.
func (s Status) Prev() Status {
	n := len(Statuses())
	return Status((int(s) + n - 1) % n)
}

// ParseStatus maps a config or user supplied name onto a Status.
func ParseStatus(name string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pending", "todo":
		return Pending, nil
	case "in-progress", "in_progress", "inprogress", "in progress", "doing":
		return InProgress, nil
	case "done":
		return Done, nil
	}
	return Pending, fmt.Errorf("unknown status %q", name)
}

// Todo is a single task record. Values handed out by List are copies.
type Todo struct {
	id     uuid.UUID
	title  string
	status Status
}

// New builds a todo with a fresh id.
func New(title string, status Status) Todo {
	return Todo{
		id:     uuid.New(),
		title:  title,
		status: status,
	}
}

func (t Todo) ID() uuid.UUID  { return t.id }
func (t Todo) Title() string  { return t.title }
func (t Todo) Status() Status { return t.status }
