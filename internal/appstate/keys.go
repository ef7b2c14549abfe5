package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Shortcuts match on Rune when it is set, otherwise on Code.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

const modifierMask = key.ModControl | key.ModAlt | key.ModMeta

// actionSet maps action names to functions and keys to action names.
type actionSet struct {
	fns  map[string]func()
	keys map[KeyShortcut]string
}

func newActionSet() *actionSet {
	return &actionSet{fns: map[string]func(){}, keys: map[KeyShortcut]string{}}
}

func (a *actionSet) register(name string, keys KeyboardShortcuts, fn func()) {
	a.fns[name] = fn
	if keys == nil {
		return
	}
	for _, sc := range keys.KeyboardShortcuts() {
		a.keys[sc] = name
	}
}

// lookup returns the action bound to e. Shift is ignored so that '[' and ']'
// work on any layout.
func (a *actionSet) lookup(e key.Event) (string, bool) {
	mods := e.Modifiers & modifierMask
	if e.Rune > 0 {
		if name, ok := a.keys[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}]; ok {
			return name, true
		}
	}
	name, ok := a.keys[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return name, ok
}

// run invokes the named action and reports whether it exists.
func (a *actionSet) run(name string) bool {
	fn, ok := a.fns[name]
	if ok {
		fn()
	}
	return ok
}
