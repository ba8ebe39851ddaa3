package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry maps key names to actions per scope. Each screen is a scope;
// lookups fall back to the global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const scopeGlobal = "global"

const (
	actionQuit       Action = "quit"
	actionNew        Action = "new"
	actionRemove     Action = "remove"
	actionUp         Action = "up"
	actionDown       Action = "down"
	actionPrevColumn Action = "prev_column"
	actionNextColumn Action = "next_column"
	actionAdvance    Action = "advance"
	actionRetreat    Action = "retreat"
	actionSubmit     Action = "submit"
	actionBackspace  Action = "backspace"
	actionClear      Action = "clear"
	actionConfirm    Action = "confirm"
	actionCancel     Action = "cancel"
	actionTop        Action = "top"
	actionBottom     Action = "bottom"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"q", "esc", "ctrl+c"}, "quit")

	mainScope := string(ScreenMain)
	reg(mainScope, actionNew, []string{"n"}, "new")
	reg(mainScope, actionRemove, []string{"d", "x"}, "remove")
	reg(mainScope, actionUp, []string{"k", "up"}, "up")
	reg(mainScope, actionDown, []string{"j", "down"}, "down")
	reg(mainScope, actionPrevColumn, []string{"h", "left", "shift+tab"}, "prev column")
	reg(mainScope, actionNextColumn, []string{"l", "right", "tab"}, "next column")
	reg(mainScope, actionAdvance, []string{"space", "s"}, "advance")
	reg(mainScope, actionRetreat, []string{"S"}, "move back")
	reg(mainScope, actionQuit, []string{"q", "esc", "ctrl+c"}, "quit")

	entry := string(ScreenNewTodo)
	reg(entry, actionSubmit, []string{"enter"}, "add")
	reg(entry, actionBackspace, []string{"backspace"}, "delete/cancel")
	reg(entry, actionClear, []string{"ctrl+u"}, "clear")
	reg(entry, actionQuit, []string{"esc", "ctrl+c"}, "quit")

	remove := string(ScreenRemoveTodo)
	reg(remove, actionUp, []string{"k", "up"}, "up")
	reg(remove, actionDown, []string{"j", "down"}, "down")
	reg(remove, actionTop, []string{"g", "home"}, "top")
	reg(remove, actionBottom, []string{"G", "end"}, "bottom")
	reg(remove, actionConfirm, []string{"enter"}, "remove")
	reg(remove, actionCancel, []string{"backspace"}, "back")
	reg(remove, actionQuit, []string{"q", "esc", "ctrl+c"}, "quit")

	return r
}

// Register adds b to each of its scopes. Keys already bound in a scope are
// not rebound.
func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, then in the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings converts the scope's bindings for the help footer.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Keep single uppercase runes distinct from their lowercase form.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "escape", "esc")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
