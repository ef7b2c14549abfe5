package board

import (
	"image/color"
	"sync"
)

const (
	MinWidth     = 1
	MaxWidth     = 50
	DefaultWidth = 5
)

// DefaultColor is the initial stroke colour.
var DefaultColor = color.RGBA{A: 0xff}

// Settings is a snapshot of the tool state.
type Settings struct {
	Tool  Tool
	Color color.RGBA
	Width int
}

// DefaultSettings returns pen, black, width 5.
func DefaultSettings() Settings {
	return Settings{Tool: ToolPen, Color: DefaultColor, Width: DefaultWidth}
}

// ClampWidth limits w to [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

type observer struct {
	id int
	fn func(Settings)
}

// ToolState holds the selected tool, colour and width and notifies observers
// synchronously whenever one of them changes.
type ToolState struct {
	mu        sync.Mutex
	settings  Settings
	next      int
	observers []observer
}

// NewToolState returns a state initialised from s.
func NewToolState(s Settings) *ToolState {
	s.Width = ClampWidth(s.Width)
	return &ToolState{settings: s}
}

// Settings returns the current values.
func (ts *ToolState) Settings() Settings {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.settings
}

// Subscribe registers fn and returns a function that removes it.
func (ts *ToolState) Subscribe(fn func(Settings)) (unsubscribe func()) {
	ts.mu.Lock()
	id := ts.next
	ts.next++
	ts.observers = append(ts.observers, observer{id: id, fn: fn})
	ts.mu.Unlock()
	return func() {
		ts.mu.Lock()
		defer ts.mu.Unlock()
		for i, o := range ts.observers {
			if o.id == id {
				ts.observers = append(ts.observers[:i:i], ts.observers[i+1:]...)
				return
			}
		}
	}
}

func (ts *ToolState) SetTool(t Tool) {
	ts.update(func(s *Settings) { s.Tool = t })
}

func (ts *ToolState) SetColor(c color.RGBA) {
	ts.update(func(s *Settings) { s.Color = c })
}

// SetWidth stores w clamped to [MinWidth, MaxWidth].
func (ts *ToolState) SetWidth(w int) {
	ts.update(func(s *Settings) { s.Width = ClampWidth(w) })
}

func (ts *ToolState) update(apply func(*Settings)) {
	ts.mu.Lock()
	prev := ts.settings
	apply(&ts.settings)
	cur := ts.settings
	list := make([]observer, len(ts.observers))
	copy(list, ts.observers)
	ts.mu.Unlock()

	if cur == prev {
		return
	}
	for _, o := range list {
		o.fn(cur)
	}
}
