package board

import (
	"errors"
	"image/color"

	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/viewport"
)

// ViewportRatio is the share of the viewport covered by the surface.
const ViewportRatio = 0.8

// Background is the surface colour after mount and after Clear.
var Background = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}

// ErrMounted is returned when mounting a host that already owns a surface.
var ErrMounted = errors.New("board already mounted")

// Host ties the lifetime of a drawing surface to a viewport.
type Host struct {
	ratio      float64
	background color.RGBA

	surface      *surface.Surface
	removeResize func()
}

// NewHost returns an unmounted host.
func NewHost(ratio float64, background color.RGBA) *Host {
	if ratio <= 0 {
		ratio = ViewportRatio
	}
	return &Host{ratio: ratio, background: background}
}

// Mount creates the surface at ratio times the viewport size and keeps it
// sized to the viewport until Unmount.
func (h *Host) Mount(vp *viewport.Viewport) (*surface.Surface, error) {
	if h.surface != nil {
		return nil, ErrMounted
	}
	w, ht := vp.Size()
	s := surface.New(surface.Options{
		Width:      h.ratio * float64(w),
		Height:     h.ratio * float64(ht),
		Background: h.background,
	})
	h.removeResize = vp.OnResize(func(w, ht int) {
		s.SetDimensions(h.ratio*float64(w), h.ratio*float64(ht))
	})
	h.surface = s
	return s, nil
}

// Unmount removes the resize listener and disposes the surface. It is safe to
// call on an unmounted host.
func (h *Host) Unmount() {
	if h.removeResize != nil {
		h.removeResize()
		h.removeResize = nil
	}
	if h.surface != nil {
		h.surface.Dispose()
		h.surface = nil
	}
}

// Surface returns the mounted surface or nil.
func (h *Host) Surface() *surface.Surface { return h.surface }
