package appstate

import "image/color"

// PaletteColor is a named colour offered by the toolbar colour picker.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var palette = []PaletteColor{
	{"black", color.RGBA{0, 0, 0, 255}},
	{"white", color.RGBA{255, 255, 255, 255}},
	{"red", color.RGBA{255, 0, 0, 255}},
	{"lime", color.RGBA{0, 255, 0, 255}},
	{"blue", color.RGBA{0, 0, 255, 255}},
	{"yellow", color.RGBA{255, 255, 0, 255}},
	{"cyan", color.RGBA{0, 255, 255, 255}},
	{"magenta", color.RGBA{255, 0, 255, 255}},
	{"maroon", color.RGBA{128, 0, 0, 255}},
	{"green", color.RGBA{0, 128, 0, 255}},
	{"navy", color.RGBA{0, 0, 128, 255}},
	{"olive", color.RGBA{128, 128, 0, 255}},
	{"teal", color.RGBA{0, 128, 128, 255}},
	{"purple", color.RGBA{128, 0, 128, 255}},
	{"silver", color.RGBA{192, 192, 192, 255}},
	{"gray", color.RGBA{128, 128, 128, 255}},
}

// PaletteColors returns a copy of the toolbar palette.
func PaletteColors() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// paletteIndex returns the swatch matching c, or -1.
func paletteIndex(c color.RGBA) int {
	for i, p := range palette {
		if p.Color == c {
			return i
		}
	}
	return -1
}
