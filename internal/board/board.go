// Package board binds tool state (pen or eraser, colour, width) to a drawing
// surface and implements the toolbar actions: shape insertion, clear, export
// and copy.
package board

import (
	"image"
	"image/color"

	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/viewport"
)

// Board is the toolbar side of a sketchpad. It is driven from a single
// goroutine.
type Board struct {
	settings   Settings
	ratio      float64
	background color.RGBA
	downloader Downloader
	copyImage  func(image.Image) error

	host   *Host
	state  *ToolState
	eraser *surface.Listener
}

// Option modifies a Board during creation.
type Option func(*Board)

// WithSettings sets the initial tool, colour and width.
func WithSettings(s Settings) Option { return func(b *Board) { b.settings = s } }

// WithDownloader sets where exported images go.
func WithDownloader(d Downloader) Option { return func(b *Board) { b.downloader = d } }

// WithClipboard sets the function Copy publishes the raster with.
func WithClipboard(fn func(image.Image) error) Option {
	return func(b *Board) { b.copyImage = fn }
}

// WithViewportRatio sets the share of the viewport covered by the surface.
func WithViewportRatio(r float64) Option { return func(b *Board) { b.ratio = r } }

// WithBackground sets the background applied on mount and on Clear.
func WithBackground(c color.RGBA) Option { return func(b *Board) { b.background = c } }

// New creates an unmounted board.
func New(opts ...Option) *Board {
	b := &Board{
		settings:   DefaultSettings(),
		ratio:      ViewportRatio,
		background: Background,
		downloader: FileDownloader{},
	}
	for _, o := range opts {
		o(b)
	}
	b.host = NewHost(b.ratio, b.background)
	b.state = NewToolState(b.settings)
	b.eraser = surface.NewListener(b.erase)
	b.state.Subscribe(b.sync)
	return b
}

// Mount creates the surface for vp and applies the current tool state to it.
func (b *Board) Mount(vp *viewport.Viewport) error {
	if _, err := b.host.Mount(vp); err != nil {
		return err
	}
	b.sync(b.state.Settings())
	return nil
}

// Unmount disposes the surface. It is safe to call more than once.
func (b *Board) Unmount() { b.host.Unmount() }

// Run mounts the board on vp, calls fn and unmounts on every exit path.
func (b *Board) Run(vp *viewport.Viewport, fn func(*Board) error) error {
	if err := b.Mount(vp); err != nil {
		return err
	}
	defer b.Unmount()
	return fn(b)
}

// Surface returns the mounted surface, or nil.
func (b *Board) Surface() *surface.Surface { return b.host.Surface() }

// Settings returns the current tool state.
func (b *Board) Settings() Settings { return b.state.Settings() }

func (b *Board) SetTool(t Tool) { b.state.SetTool(t) }

func (b *Board) SetColor(c color.RGBA) { b.state.SetColor(c) }

// SetWidth stores w clamped to [MinWidth, MaxWidth].
func (b *Board) SetWidth(w int) { b.state.SetWidth(w) }

// Subscribe registers fn for tool state changes.
func (b *Board) Subscribe(fn func(Settings)) (unsubscribe func()) {
	return b.state.Subscribe(fn)
}

// sync copies the tool state onto the surface.
func (b *Board) sync(st Settings) {
	s := b.Surface()
	if s == nil {
		return
	}
	s.SetDrawingMode(st.Tool == ToolPen)
	brush := s.FreeDrawingBrush()
	brush.Color = st.Color
	brush.Width = float64(st.Width)
	if st.Tool == ToolEraser {
		s.On(surface.EventMouseDown, b.eraser)
	} else {
		s.Off(surface.EventMouseDown, b.eraser)
	}
}

func (b *Board) erase(ev surface.Event) {
	s := b.Surface()
	if s == nil {
		return
	}
	if target := s.FindTarget(ev.Pointer); target != nil {
		s.Remove(target)
	}
}
