package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/todotui/internal/app"
)

var namedKeys = map[tea.KeyType]app.KeyCode{
	tea.KeyEnter:     app.KeyEnter,
	tea.KeyEsc:       app.KeyEsc,
	tea.KeyBackspace: app.KeyBackspace,
	tea.KeyCtrlH:     app.KeyBackspace,
	tea.KeyDelete:    app.KeyDelete,
	tea.KeyTab:       app.KeyTab,
	tea.KeyUp:        app.KeyUp,
	tea.KeyDown:      app.KeyDown,
	tea.KeyLeft:      app.KeyLeft,
	tea.KeyRight:     app.KeyRight,
	tea.KeyHome:      app.KeyHome,
	tea.KeyEnd:       app.KeyEnd,
}

// translate converts a bubbletea message into an input event. Messages that
// are not input report false.
func translate(msg tea.Msg) (app.Event, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return keyEvent(m), true
	case tea.MouseMsg:
		return app.MouseEvent{X: m.X, Y: m.Y}, true
	case tea.WindowSizeMsg:
		return app.ResizeEvent{Width: m.Width, Height: m.Height}, true
	}
	return nil, false
}

// keyEvent maps a key message to a press. bubbletea only reports presses.
func keyEvent(k tea.KeyMsg) app.Event {
	if k.Paste || (k.Type == tea.KeyRunes && len(k.Runes) > 1) {
		return app.PasteEvent{Text: string(k.Runes)}
	}
	var mods app.Modifiers
	if k.Alt {
		mods |= app.ModAlt
	}
	switch k.Type {
	case tea.KeyRunes:
		if len(k.Runes) == 1 {
			return app.PressRune(k.Runes[0], mods)
		}
	case tea.KeySpace:
		return app.PressRune(' ', mods)
	case tea.KeyShiftTab:
		return app.Press(app.KeyTab, mods|app.ModShift)
	}
	if code, ok := namedKeys[k.Type]; ok {
		return app.Press(code, mods)
	}
	if k.Type >= tea.KeyCtrlA && k.Type <= tea.KeyCtrlZ {
		return app.PressRune('a'+rune(k.Type-tea.KeyCtrlA), mods|app.ModCtrl)
	}
	return app.Press(app.KeyUnknown, mods)
}
