package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/sketchpad/internal/board"
)

// maxColorEntry bounds the typed text; the longest colour name is shorter.
const maxColorEntry = 24

// colorEntry reads a colour value typed into the status line. It accepts
// anything board.ParseColor does: #rgb, #rrggbb, #rrggbbaa or a colour name.
type colorEntry struct {
	active bool
	text   []rune
}

// begin starts a new entry seeded with '#'.
func (c *colorEntry) begin() {
	c.active = true
	c.text = []rune{'#'}
}

func (c *colorEntry) prompt() string {
	return "color: " + string(c.text) + "|"
}

// handle consumes e while an entry is active. Enter applies the value to b,
// Escape cancels. The returned status replaces the status line.
func (c *colorEntry) handle(e key.Event, b *board.Board) (status string, consumed bool) {
	if !c.active {
		return "", false
	}
	switch e.Code {
	case key.CodeEscape:
		c.active = false
		return "color unchanged", true
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		c.active = false
		col, err := board.ParseColor(string(c.text))
		if err != nil {
			return err.Error(), true
		}
		b.SetColor(col)
		return "color " + board.FormatColor(col), true
	case key.CodeDeleteBackspace:
		if len(c.text) > 0 {
			c.text = c.text[:len(c.text)-1]
		}
		return c.prompt(), true
	}
	if e.Rune > 0 && unicode.IsPrint(e.Rune) && len(c.text) < maxColorEntry {
		c.text = append(c.text, e.Rune)
	}
	return c.prompt(), true
}
