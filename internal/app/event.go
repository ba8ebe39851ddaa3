package app

import "strings"

// Event is one item from the input source. The set of implementations is closed.
type Event interface {
	isEvent()
}

// KeyKind distinguishes presses from releases and repeats.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
	KeyRepeat
)

// KeyCode names a key. KeyRune means the key produced the character in KeyEvent.Rune.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

var keyCodeNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
}

// Modifiers is a set of modifier keys held during a key event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Kind KeyKind
	Code KeyCode
	Rune rune
	Mods Modifiers
}

// Press builds a key press event for a named key.
func Press(code KeyCode, mods Modifiers) KeyEvent {
	return KeyEvent{Kind: KeyPress, Code: code, Mods: mods}
}

// PressRune builds a key press event for a character key.
func PressRune(r rune, mods Modifiers) KeyEvent {
	return KeyEvent{Kind: KeyPress, Code: KeyRune, Rune: r, Mods: mods}
}

// String renders the key the way bindings are written, e.g. "ctrl+c",
// "shift+tab", "q", "space". Unknown keys render as "".
func (k KeyEvent) String() string {
	var name string
	switch k.Code {
	case KeyRune:
		if k.Rune == ' ' {
			name = "space"
		} else {
			name = string(k.Rune)
		}
	default:
		name = keyCodeNames[k.Code]
	}
	if name == "" {
		return ""
	}
	var b strings.Builder
	if k.Mods.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Mods.Has(ModAlt) {
		b.WriteString("alt+")
	}
	// Shifted runes arrive already upper-cased.
	if k.Mods.Has(ModShift) && k.Code != KeyRune {
		b.WriteString("shift+")
	}
	b.WriteString(name)
	return b.String()
}

// printable reports whether the event should be typed into a text buffer.
func (k KeyEvent) printable() bool {
	return k.Code == KeyRune && !k.Mods.Has(ModCtrl) && !k.Mods.Has(ModAlt) && k.Rune >= ' '
}

// MouseEvent is a pointer event at a grid cell.
type MouseEvent struct {
	X, Y int
}

// ResizeEvent reports a new surface size.
type ResizeEvent struct {
	Width, Height int
}

// PasteEvent carries bracketed-paste text.
type PasteEvent struct {
	Text string
}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (PasteEvent) isEvent()  {}
