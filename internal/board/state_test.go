package board

import (
	"image/color"
	"testing"
)

func TestToolStateNotifiesOnChange(t *testing.T) {
	ts := NewToolState(DefaultSettings())
	var seen []Settings
	unsubscribe := ts.Subscribe(func(s Settings) { seen = append(seen, s) })

	ts.SetTool(ToolPen)
	ts.SetTool(ToolEraser)
	ts.SetWidth(DefaultWidth)
	ts.SetWidth(99)
	ts.SetWidth(120)
	ts.SetColor(color.RGBA{1, 2, 3, 255})

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d: %+v", len(seen), seen)
	}
	if seen[1].Width != MaxWidth {
		t.Fatalf("expected clamped width, got %d", seen[1].Width)
	}
	unsubscribe()
	ts.SetTool(ToolPen)
	if len(seen) != 3 {
		t.Fatalf("observer called after unsubscribe")
	}
}

func TestNewToolStateClampsWidth(t *testing.T) {
	ts := NewToolState(Settings{Width: -4})
	if got := ts.Settings().Width; got != MinWidth {
		t.Fatalf("expected %d, got %d", MinWidth, got)
	}
}

func TestParseTool(t *testing.T) {
	tests := []struct {
		in      string
		want    Tool
		wantErr bool
	}{
		{"pen", ToolPen, false},
		{" Eraser", ToolEraser, false},
		{"brush", ToolPen, true},
	}
	for _, tt := range tests {
		got, err := ParseTool(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseTool(%q) = %v, %v", tt.in, got, err)
		}
	}
	if ToolEraser.String() != "eraser" {
		t.Fatalf("unexpected String %q", ToolEraser.String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{"#0f0", color.RGBA{0, 255, 0, 255}},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 255}},
		{"#ff000080", color.RGBA{0x80, 0, 0, 0x80}},
		{"#00000000", color.RGBA{}},
		{"Navy", color.RGBA{0, 0, 128, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "nocolor", "#12", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
	if got := FormatColor(color.RGBA{0xf0, 0xf0, 0xf0, 0xff}); got != "#f0f0f0" {
		t.Fatalf("FormatColor = %q", got)
	}
}

func TestTranslucentColorIsPremultiplied(t *testing.T) {
	c, err := ParseColor("#ff000080")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c.R > c.A || c.G > c.A || c.B > c.A {
		t.Fatalf("channel exceeds alpha in %v", c)
	}
	if got := FormatColor(c); got != "#ff000080" {
		t.Fatalf("FormatColor = %q, want #ff000080", got)
	}
}
