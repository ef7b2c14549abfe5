// Package surface implements an interactive drawing surface: an ordered list of
// objects, a free drawing brush, pointer dispatch with hit-testing, and
// rasterisation through gogpu/gg.
package surface

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
)

var (
	// ErrDisposed is returned by operations that need pixels after Dispose.
	ErrDisposed = errors.New("surface disposed")
	// ErrUnsupportedFormat is returned by ToDataURL for unknown formats.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Brush configures free drawing. Changes take effect on the next stroke.
type Brush struct {
	Color color.RGBA
	Width float64
}

// Options configure a new Surface.
type Options struct {
	Width      float64
	Height     float64
	Background color.RGBA
}

// Surface is a drawing surface. It is not safe for concurrent use.
type Surface struct {
	width, height float64
	background    color.RGBA
	objects       []Object
	active        Object
	drawingMode   bool
	brush         *Brush
	listeners     map[EventName][]*Listener
	stroke        *stroke
	dc            *gg.Context
	disposed      bool
}

// New creates a surface. The brush starts black with width 1.
func New(opts Options) *Surface {
	return &Surface{
		width:      opts.Width,
		height:     opts.Height,
		background: opts.Background,
		brush:      &Brush{Color: color.RGBA{A: 255}, Width: 1},
		listeners:  make(map[EventName][]*Listener),
	}
}

func (s *Surface) Width() float64  { return s.width }
func (s *Surface) Height() float64 { return s.height }

// SetDimensions resizes the surface. The raster follows on the next Render.
func (s *Surface) SetDimensions(w, h float64) {
	if s.disposed {
		return
	}
	s.width = w
	s.height = h
}

// RasterSize is the pixel size used for w x h: each side rounded up, at least 1.
func RasterSize(w, h float64) image.Point {
	return image.Pt(rasterSide(w), rasterSide(h))
}

func rasterSide(v float64) int {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return int(math.Ceil(v))
}

func (s *Surface) DrawingMode() bool { return s.drawingMode }

// SetDrawingMode toggles free drawing. Turning it off drops an unfinished stroke.
func (s *Surface) SetDrawingMode(on bool) {
	if s.disposed {
		return
	}
	s.drawingMode = on
	if !on {
		s.stroke = nil
	}
}

// FreeDrawingBrush returns the brush used in drawing mode.
func (s *Surface) FreeDrawingBrush() *Brush { return s.brush }

func (s *Surface) BackgroundColor() color.RGBA { return s.background }

func (s *Surface) SetBackgroundColor(c color.RGBA) {
	if s.disposed {
		return
	}
	s.background = c
}

// Add appends objects to the top of the stack. Nil objects are skipped.
func (s *Surface) Add(objs ...Object) {
	if s.disposed {
		return
	}
	for _, o := range objs {
		if o == nil {
			continue
		}
		s.objects = append(s.objects, o)
		s.fire(Event{Name: EventObjectAdded, Target: o})
	}
}

// Remove deletes obj from the surface and reports whether it was present.
func (s *Surface) Remove(obj Object) bool {
	if s.disposed || obj == nil {
		return false
	}
	for i, o := range s.objects {
		if o != obj {
			continue
		}
		s.objects = append(s.objects[:i:i], s.objects[i+1:]...)
		if s.active == obj {
			s.DiscardActiveObject()
		}
		s.fire(Event{Name: EventObjectRemoved, Target: obj})
		return true
	}
	return false
}

// Clear removes every object, drops the selection and makes the background
// transparent.
func (s *Surface) Clear() {
	if s.disposed {
		return
	}
	s.objects = nil
	s.stroke = nil
	s.DiscardActiveObject()
	s.background = color.RGBA{}
}

// Objects returns the objects bottom to top.
func (s *Surface) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Surface) ActiveObject() Object { return s.active }

// SetActiveObject makes obj the only selected object.
func (s *Surface) SetActiveObject(obj Object) {
	if s.disposed {
		return
	}
	if obj == nil {
		s.DiscardActiveObject()
		return
	}
	s.active = obj
	s.fire(Event{Name: EventSelectionCreated, Target: obj})
}

// DiscardActiveObject clears the selection.
func (s *Surface) DiscardActiveObject() {
	if s.active == nil {
		return
	}
	prev := s.active
	s.active = nil
	s.fire(Event{Name: EventSelectionCleared, Target: prev})
}

// FindTarget returns the topmost object whose bounds contain p, or nil.
func (s *Surface) FindTarget(p Point) Object {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].Bounds().Contains(p) {
			return s.objects[i]
		}
	}
	return nil
}

// Render paints the background and every object and returns the pixels.
func (s *Surface) Render() (*image.RGBA, error) {
	if s.disposed {
		return nil, ErrDisposed
	}
	size := RasterSize(s.width, s.height)
	if s.dc == nil {
		s.dc = gg.NewContext(size.X, size.Y)
	} else if err := s.dc.Resize(size.X, size.Y); err != nil {
		return nil, err
	}
	dc := s.dc
	dc.ClearWithColor(gg.FromColor(s.background))
	for _, o := range s.objects {
		dc.ClearPath()
		if err := o.draw(dc); err != nil {
			return nil, err
		}
	}
	if st := s.stroke; st != nil {
		dc.ClearPath()
		live := &Path{Points: st.points, Stroke: st.color, Width: st.width}
		if err := live.draw(dc); err != nil {
			return nil, err
		}
	}
	return toRGBA(dc.Image()), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// Dispose releases the raster and drops objects and listeners. Later calls
// are no-ops.
func (s *Surface) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.objects = nil
	s.active = nil
	s.stroke = nil
	s.listeners = nil
	if s.dc != nil {
		_ = s.dc.Close()
		s.dc = nil
	}
}

// Disposed reports whether Dispose has been called.
func (s *Surface) Disposed() bool { return s.disposed }
