package surface

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

// Kind names the type of a drawable object.
type Kind string

const (
	KindRect     Kind = "rect"
	KindCircle   Kind = "circle"
	KindTriangle Kind = "triangle"
	KindTextbox  Kind = "textbox"
	KindPath     Kind = "path"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Box is an axis aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Origin selects which point of an object's box Left/Top refer to.
type Origin int

const (
	OriginStart Origin = iota // left or top edge
	OriginCenter
	OriginEnd // right or bottom edge
)

func (o Origin) factor() float64 {
	switch o {
	case OriginCenter:
		return 0.5
	case OriginEnd:
		return 1
	}
	return 0
}

// Placement positions an object on the surface.
type Placement struct {
	Left    float64
	Top     float64
	OriginX Origin
	OriginY Origin
	Fill    color.RGBA
}

// Centered returns a placement whose origin is the middle of the object.
func Centered(x, y float64, fill color.RGBA) Placement {
	return Placement{Left: x, Top: y, OriginX: OriginCenter, OriginY: OriginCenter, Fill: fill}
}

func (p Placement) box(w, h float64) Box {
	x := p.Left - w*p.OriginX.factor()
	y := p.Top - h*p.OriginY.factor()
	return Box{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Object is anything that can be placed on a Surface.
type Object interface {
	ID() string
	Kind() Kind
	// Bounds covers every pixel the object paints, stroke included.
	Bounds() Box
	draw(dc *gg.Context) error
}

type base struct {
	id string
}

func newBase() base { return base{id: uuid.NewString()} }

func (b base) ID() string { return b.id }

// Rect is a filled axis aligned rectangle.
type Rect struct {
	base
	Placement
	Width  float64
	Height float64
}

// NewRect builds a rectangle of the given size.
func NewRect(p Placement, w, h float64) *Rect {
	return &Rect{base: newBase(), Placement: p, Width: w, Height: h}
}

func (r *Rect) Kind() Kind  { return KindRect }
func (r *Rect) Bounds() Box { return r.box(r.Width, r.Height) }

func (r *Rect) draw(dc *gg.Context) error {
	b := r.Bounds()
	dc.SetColor(r.Fill)
	dc.DrawRectangle(b.MinX, b.MinY, b.Width(), b.Height())
	return dc.Fill()
}

// Circle is a filled circle.
type Circle struct {
	base
	Placement
	Radius float64
}

// NewCircle builds a circle of radius r.
func NewCircle(p Placement, r float64) *Circle {
	return &Circle{base: newBase(), Placement: p, Radius: r}
}

func (c *Circle) Kind() Kind  { return KindCircle }
func (c *Circle) Bounds() Box { return c.box(2*c.Radius, 2*c.Radius) }

func (c *Circle) draw(dc *gg.Context) error {
	ctr := c.Bounds().Center()
	dc.SetColor(c.Fill)
	dc.DrawCircle(ctr.X, ctr.Y, c.Radius)
	return dc.Fill()
}

// Triangle is an isosceles triangle with its apex at the top middle of its box.
type Triangle struct {
	base
	Placement
	Width  float64
	Height float64
}

// NewTriangle builds a triangle of the given size.
func NewTriangle(p Placement, w, h float64) *Triangle {
	return &Triangle{base: newBase(), Placement: p, Width: w, Height: h}
}

func (t *Triangle) Kind() Kind  { return KindTriangle }
func (t *Triangle) Bounds() Box { return t.box(t.Width, t.Height) }

func (t *Triangle) draw(dc *gg.Context) error {
	b := t.Bounds()
	dc.SetColor(t.Fill)
	dc.MoveTo(b.MinX+b.Width()/2, b.MinY)
	dc.LineTo(b.MaxX, b.MaxY)
	dc.LineTo(b.MinX, b.MaxY)
	dc.ClosePath()
	return dc.Fill()
}

// Textbox is a single line of editable text.
type Textbox struct {
	base
	Placement
	Text     string
	FontSize float64

	width  float64
	height float64
}

// lineHeight is the ratio between a text line and its font size.
const lineHeight = 1.16

// NewTextbox builds a text object and measures it with the surface font.
func NewTextbox(p Placement, s string, size float64) *Textbox {
	t := &Textbox{base: newBase(), Placement: p, Text: s, FontSize: size}
	t.width = measureText(s, size)
	t.height = size * lineHeight
	return t
}

func (t *Textbox) Kind() Kind  { return KindTextbox }
func (t *Textbox) Bounds() Box { return t.box(t.width, t.height) }

func (t *Textbox) draw(dc *gg.Context) error {
	face, err := faceForSize(t.FontSize)
	if err != nil {
		return err
	}
	ctr := t.Bounds().Center()
	dc.SetFont(face)
	dc.SetColor(t.Fill)
	dc.DrawStringAnchored(t.Text, ctr.X, ctr.Y, 0.5, 0.5)
	return nil
}

// Path is a free-hand stroke recorded by the drawing brush.
type Path struct {
	base
	Points []Point
	Stroke color.RGBA
	Width  float64
}

// NewPath builds a stroke through pts.
func NewPath(pts []Point, stroke color.RGBA, width float64) *Path {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return &Path{base: newBase(), Points: cp, Stroke: stroke, Width: width}
}

func (p *Path) Kind() Kind { return KindPath }

func (p *Path) Bounds() Box {
	if len(p.Points) == 0 {
		return Box{}
	}
	b := Box{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, pt := range p.Points {
		b.MinX = math.Min(b.MinX, pt.X)
		b.MinY = math.Min(b.MinY, pt.Y)
		b.MaxX = math.Max(b.MaxX, pt.X)
		b.MaxY = math.Max(b.MaxY, pt.Y)
	}
	half := p.Width / 2
	b.MinX -= half
	b.MinY -= half
	b.MaxX += half
	b.MaxY += half
	return b
}

func (p *Path) draw(dc *gg.Context) error {
	if len(p.Points) == 0 {
		return nil
	}
	dc.SetColor(p.Stroke)
	dc.SetLineWidth(p.Width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	if len(p.Points) == 1 {
		dc.LineTo(p.Points[0].X, p.Points[0].Y)
	}
	return dc.Stroke()
}
