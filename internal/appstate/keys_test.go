package appstate

import (
	"testing"

	"golang.org/x/mobile/event/key"
)

func TestActionLookup(t *testing.T) {
	acts := newActionSet()
	var ran []string
	acts.register("pen", shortcutList{{Rune: 'p'}}, func() { ran = append(ran, "pen") })
	acts.register("thinner", shortcutList{{Rune: '['}}, func() { ran = append(ran, "thinner") })
	acts.register("save", shortcutList{{Code: key.CodeS, Modifiers: key.ModControl}}, func() { ran = append(ran, "save") })

	tests := []struct {
		name  string
		event key.Event
		want  string
	}{
		{"lower", key.Event{Rune: 'p', Code: key.CodeP}, "pen"},
		{"upper", key.Event{Rune: 'P', Code: key.CodeP, Modifiers: key.ModShift}, "pen"},
		{"bracket", key.Event{Rune: '[', Code: key.CodeLeftSquareBracket}, "thinner"},
		{"ctrl s", key.Event{Rune: -1, Code: key.CodeS, Modifiers: key.ModControl}, "save"},
		{"ctrl s with rune", key.Event{Rune: 's', Code: key.CodeS, Modifiers: key.ModControl}, "save"},
		{"plain s", key.Event{Rune: 's', Code: key.CodeS}, ""},
		{"ctrl p", key.Event{Rune: 'p', Code: key.CodeP, Modifiers: key.ModControl}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := acts.lookup(tc.event)
			if got != tc.want || ok != (tc.want != "") {
				t.Fatalf("lookup = %q, %v; want %q", got, ok, tc.want)
			}
		})
	}

	if !acts.run("save") || acts.run("missing") {
		t.Fatalf("run should report whether the action exists")
	}
	if len(ran) != 1 || ran[0] != "save" {
		t.Fatalf("unexpected runs %v", ran)
	}
}
