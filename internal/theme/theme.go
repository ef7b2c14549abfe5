package theme

import (
	"image/color"
	"sort"
	"strings"
)

// Theme defines the colours of the window chrome around the drawing surface.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area around the surface
	Foreground color.RGBA // Status text

	// Toolbar
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Colour picker and width slider
	SwatchBorder   color.RGBA
	SwatchSelected color.RGBA
	SliderTrack    color.RGBA
	SliderKnob     color.RGBA
}

// Default returns the light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{232, 232, 232, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		SwatchBorder:          color.RGBA{96, 96, 96, 255},
		SwatchSelected:        color.RGBA{255, 255, 255, 255},
		SliderTrack:           color.RGBA{160, 160, 160, 255},
		SliderKnob:            color.RGBA{60, 60, 60, 255},
	}
}

// Dark returns a dark variant.
func Dark() *Theme {
	return &Theme{
		Name:                  "dark",
		Background:            color.RGBA{40, 40, 44, 255},
		Foreground:            color.RGBA{230, 230, 230, 255},
		ToolbarBackground:     color.RGBA{30, 30, 34, 255},
		ButtonBackground:      color.RGBA{60, 60, 66, 255},
		ButtonBackgroundHover: color.RGBA{80, 80, 88, 255},
		ButtonBackgroundPress: color.RGBA{110, 110, 120, 255},
		ButtonText:            color.RGBA{235, 235, 235, 255},
		ButtonBorder:          color.RGBA{120, 120, 130, 255},
		SwatchBorder:          color.RGBA{140, 140, 150, 255},
		SwatchSelected:        color.RGBA{255, 200, 0, 255},
		SliderTrack:           color.RGBA{90, 90, 100, 255},
		SliderKnob:            color.RGBA{220, 220, 220, 255},
	}
}

// HighContrast returns a black and white theme.
func HighContrast() *Theme {
	return &Theme{
		Name:                  "high_contrast",
		Background:            color.RGBA{0, 0, 0, 255},
		Foreground:            color.RGBA{255, 255, 255, 255},
		ToolbarBackground:     color.RGBA{0, 0, 0, 255},
		ButtonBackground:      color.RGBA{0, 0, 0, 255},
		ButtonBackgroundHover: color.RGBA{64, 64, 64, 255},
		ButtonBackgroundPress: color.RGBA{255, 255, 0, 255},
		ButtonText:            color.RGBA{255, 255, 255, 255},
		ButtonBorder:          color.RGBA{255, 255, 255, 255},
		SwatchBorder:          color.RGBA{255, 255, 255, 255},
		SwatchSelected:        color.RGBA{255, 255, 0, 255},
		SliderTrack:           color.RGBA{255, 255, 255, 255},
		SliderKnob:            color.RGBA{255, 255, 0, 255},
	}
}

var builtin = map[string]func() *Theme{
	"default":       Default,
	"dark":          Dark,
	"high_contrast": HighContrast,
}

// Builtin returns the named builtin theme.
func Builtin(name string) (*Theme, bool) {
	fn, ok := builtin[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// BuiltinNames lists the builtin themes in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
