package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/todotui/internal/app"
)

// Options controls the terminal surface.
type Options struct {
	// ModalWidth and ModalHeight size the new-todo overlay as percentages
	// of the screen.
	ModalWidth  int
	ModalHeight int
	AltScreen   bool
	Mouse       bool
}

// App adapts the state machine to bubbletea. Update feeds translated input
// to the machine; View draws the machine's snapshot and never changes it.
type App struct {
	machine *app.Machine
	opts    Options
	help    help.Model
	width   int
	height  int
}

// SurfaceError reports a failure of the terminal program itself.
type SurfaceError struct {
	Err error
}

func (e *SurfaceError) Error() string { return "terminal: " + e.Err.Error() }
func (e *SurfaceError) Unwrap() error { return e.Err }

func New(machine *app.Machine, opts Options) *App {
	if opts.ModalWidth <= 0 {
		opts.ModalWidth = 60
	}
	if opts.ModalHeight <= 0 {
		opts.ModalHeight = 25
	}
	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpDescStyle
	return &App{
		machine: machine,
		opts:    opts,
		help:    h,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	}
	if ev, ok := translate(msg); ok {
		a.machine.Handle(ev)
	}
	if !a.machine.Running() {
		return a, tea.Quit
	}
	return a, nil
}

// Run drives the machine until it stops. bubbletea takes over the terminal
// before the first frame and restores it on every exit path.
func Run(ctx context.Context, machine *app.Machine, opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(New(machine, opts), progOpts...)
	if _, err := p.Run(); err != nil {
		return &SurfaceError{Err: err}
	}
	return nil
}
