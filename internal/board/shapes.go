package board

import (
	"image/color"
	"strings"

	"github.com/example/sketchpad/internal/surface"
)

// Shape is a kind of primitive the toolbar can insert.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeTriangle  Shape = "triangle"
	ShapeText      Shape = "text"
)

// Shapes lists the insertable shapes in toolbar order.
var Shapes = []Shape{ShapeRectangle, ShapeCircle, ShapeTriangle, ShapeText}

const (
	shapeSize    = 100
	circleRadius = 50
	textContent  = "Hello"
	textSize     = 24
)

// ParseShape matches s case-insensitively against the known shapes.
func ParseShape(s string) (Shape, bool) {
	k := Shape(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Shapes {
		if k == known {
			return k, true
		}
	}
	return k, false
}

// NewShape builds kind centred on (x, y) and filled with fill. It returns nil
// for unknown kinds.
func NewShape(kind Shape, x, y float64, fill color.RGBA) surface.Object {
	p := surface.Centered(x, y, fill)
	switch kind {
	case ShapeRectangle:
		return surface.NewRect(p, shapeSize, shapeSize)
	case ShapeCircle:
		return surface.NewCircle(p, circleRadius)
	case ShapeTriangle:
		return surface.NewTriangle(p, shapeSize, shapeSize)
	case ShapeText:
		return surface.NewTextbox(p, textContent, textSize)
	}
	return nil
}

// AddShape inserts kind at the centre of the surface in the current colour and
// selects it. Unknown kinds and an unmounted board insert nothing.
func (b *Board) AddShape(kind Shape) surface.Object {
	s := b.Surface()
	if s == nil {
		return nil
	}
	obj := NewShape(kind, s.Width()/2, s.Height()/2, b.state.Settings().Color)
	if obj == nil {
		return nil
	}
	s.Add(obj)
	s.SetActiveObject(obj)
	return obj
}
