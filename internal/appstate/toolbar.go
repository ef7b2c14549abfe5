package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/example/sketchpad/internal/board"
	"github.com/example/sketchpad/internal/theme"
)

const (
	buttonHeight = 24
	buttonPad    = 6
	rowGap       = 4
	swatchSize   = 16
	swatchGap    = 2
	sliderWidth  = 110
	sliderLabel  = 40
)

// hitKind identifies the toolbar element under a point.
type hitKind int

const (
	hitNone hitKind = iota
	hitButton
	hitSwatch
	hitSlider
)

type hit struct {
	kind  hitKind
	index int
}

type swatch struct {
	PaletteColor
	rect image.Rectangle
}

// slider maps a horizontal track onto the width range.
type slider struct {
	rect image.Rectangle
}

func (s slider) track() image.Rectangle {
	return image.Rect(s.rect.Min.X+4, s.rect.Min.Y, s.rect.Max.X-sliderLabel, s.rect.Max.Y)
}

// valueAt converts an x coordinate into a width, clamped to the range.
func (s slider) valueAt(x int) int {
	t := s.track()
	if t.Dx() <= 1 {
		return board.MinWidth
	}
	span := board.MaxWidth - board.MinWidth
	v := board.MinWidth + ((x-t.Min.X)*span+(t.Dx()-1)/2)/(t.Dx()-1)
	return board.ClampWidth(v)
}

func (s slider) knobX(v int) int {
	t := s.track()
	v = board.ClampWidth(v)
	return t.Min.X + (v-board.MinWidth)*(t.Dx()-1)/(board.MaxWidth-board.MinWidth)
}

// toolbar lays out the controls left to right, wrapping onto further rows
// when the window is too narrow.
type toolbar struct {
	theme    *theme.Theme
	buttons  []*CacheButton
	tools    []*ToolButton
	swatches []swatch
	slider   slider
	// trailing is the index in buttons where the action buttons start.
	trailing int
	height   int
}

func newToolbar(th *theme.Theme, tools []*ToolButton, shapes, actions []*ActionButton) *toolbar {
	tb := &toolbar{theme: th, tools: tools}
	for _, t := range tools {
		t.theme = th
		tb.buttons = append(tb.buttons, &CacheButton{Button: t})
	}
	for _, s := range shapes {
		s.theme = th
		tb.buttons = append(tb.buttons, &CacheButton{Button: s})
	}
	tb.trailing = len(tb.buttons)
	for _, a := range actions {
		a.theme = th
		tb.buttons = append(tb.buttons, &CacheButton{Button: a})
	}
	for _, p := range palette {
		tb.swatches = append(tb.swatches, swatch{PaletteColor: p})
	}
	return tb
}

// layout positions every control for a window of the given width and
// records the resulting toolbar height.
func (tb *toolbar) layout(width int) {
	x, y := rowGap, rowGap
	place := func(w, h int) image.Rectangle {
		if x+w > width-rowGap && x > rowGap {
			x = rowGap
			y += buttonHeight + rowGap
		}
		r := image.Rect(x, y, x+w, y+h)
		x += w + rowGap
		return r
	}
	for i, cb := range tb.buttons[:tb.trailing] {
		tb.buttons[i].SetRect(place(labelWidth(buttonText(cb)), buttonHeight))
	}
	for i := range tb.swatches {
		r := place(swatchSize, swatchSize)
		tb.swatches[i].rect = r.Add(image.Pt(0, (buttonHeight-swatchSize)/2))
		x -= rowGap - swatchGap
	}
	x += rowGap - swatchGap
	tb.slider.rect = place(sliderWidth+sliderLabel, buttonHeight)
	for _, cb := range tb.buttons[tb.trailing:] {
		cb.SetRect(place(labelWidth(buttonText(cb)), buttonHeight))
	}
	tb.height = y + buttonHeight + rowGap
}

func buttonText(cb *CacheButton) string {
	switch b := cb.Button.(type) {
	case *ToolButton:
		return b.text
	case *ActionButton:
		return b.text
	}
	return ""
}

// hit reports which control contains p.
func (tb *toolbar) hit(p image.Point) hit {
	for i, cb := range tb.buttons {
		if p.In(cb.Rect()) {
			return hit{kind: hitButton, index: i}
		}
	}
	for i, s := range tb.swatches {
		if p.In(s.rect) {
			return hit{kind: hitSwatch, index: i}
		}
	}
	if p.In(tb.slider.rect) {
		return hit{kind: hitSlider}
	}
	return hit{kind: hitNone, index: -1}
}

func (tb *toolbar) draw(dst *image.RGBA, width int, settings board.Settings, hover hit) {
	draw.Draw(dst, image.Rect(0, 0, width, tb.height), &image.Uniform{tb.theme.ToolbarBackground}, image.Point{}, draw.Src)
	for i, cb := range tb.buttons {
		state := StateDefault
		if t, ok := cb.Button.(*ToolButton); ok && t.tool == settings.Tool {
			state = StatePressed
		} else if hover.kind == hitButton && hover.index == i {
			state = StateHover
		}
		cb.Draw(dst, state)
	}

	selected := paletteIndex(settings.Color)
	for i, s := range tb.swatches {
		draw.Draw(dst, s.rect, &image.Uniform{s.Color}, image.Point{}, draw.Src)
		border := tb.theme.SwatchBorder
		if i == selected {
			border = tb.theme.SwatchSelected
		}
		drawRect(dst, s.rect, border, 1)
		if hover.kind == hitSwatch && hover.index == i {
			draw.Draw(dst, s.rect, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
	}

	t := tb.slider.track()
	mid := t.Min.Y + t.Dy()/2
	draw.Draw(dst, image.Rect(t.Min.X, mid-1, t.Max.X, mid+1), &image.Uniform{tb.theme.SliderTrack}, image.Point{}, draw.Src)
	kx := tb.slider.knobX(settings.Width)
	draw.Draw(dst, image.Rect(kx-3, t.Min.Y+4, kx+3, t.Max.Y-4), &image.Uniform{tb.theme.SliderKnob}, image.Point{}, draw.Src)
	drawText(dst, t.Max.X+6, t.Min.Y+17, fmt.Sprintf("%dpx", settings.Width), tb.theme.Foreground)
}
