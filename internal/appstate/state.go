package appstate

import (
	"image"
	"image/draw"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/board"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/viewport"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 800
	statusHeight  = 20
)

// AppState holds the window configuration and the board it hosts.
type AppState struct {
	Board    *board.Board
	Theme    *theme.Theme
	Width    int
	Height   int
	Notifier *notify.Notifier

	mu          sync.Mutex
	sendControl func(any)
	onClose     func()
	closeOnce   sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithBoard sets the board shown in the window.
func WithBoard(b *board.Board) Option { return func(a *AppState) { a.Board = b } }

// WithTheme sets the toolbar colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithSize sets the initial window size in pixels.
func WithSize(w, h int) Option {
	return func(a *AppState) {
		if w > 0 {
			a.Width = w
		}
		if h > 0 {
			a.Height = h
		}
	}
}

// WithNotifier sets the desktop notifier used for copy events.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
	for _, o := range opts {
		o(a)
	}
	if a.Board == nil {
		a.Board = board.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

type statusEvent struct {
	message string
}

// Saved shows a status message for a written file. It is meant to be wired
// to board.FileDownloader.OnSaved.
func (a *AppState) Saved(path string) {
	a.status("saved " + path)
}

func (a *AppState) status(msg string) {
	log.Print(msg)
	a.mu.Lock()
	send := a.sendControl
	a.mu.Unlock()
	if send != nil {
		send(statusEvent{message: msg})
	}
}

func (a *AppState) setControlSender(fn func(any)) {
	a.mu.Lock()
	a.sendControl = fn
	a.mu.Unlock()
}

func (a *AppState) notifyClose() {
	a.setControlSender(nil)
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run opens the window and blocks until it is closed.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the event loop on s. The board is mounted for the lifetime of
// the window.
func (a *AppState) Main(s screen.Screen) {
	width, height := a.Width, a.Height
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Sketchpad"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	b := a.Board
	quit := false
	var message string
	var messageUntil time.Time
	var entry colorEntry

	acts := newActionSet()
	acts.register("pen", shortcutList{{Rune: 'p'}}, func() { b.SetTool(board.ToolPen) })
	acts.register("eraser", shortcutList{{Rune: 'e'}}, func() { b.SetTool(board.ToolEraser) })
	acts.register("rectangle", shortcutList{{Rune: 'r'}}, func() { b.AddShape(board.ShapeRectangle) })
	acts.register("circle", shortcutList{{Rune: 'c'}}, func() { b.AddShape(board.ShapeCircle) })
	acts.register("triangle", shortcutList{{Rune: 't'}}, func() { b.AddShape(board.ShapeTriangle) })
	acts.register("text", shortcutList{{Rune: 'x'}}, func() { b.AddShape(board.ShapeText) })
	acts.register("thinner", shortcutList{{Rune: '['}}, func() { b.SetWidth(b.Settings().Width - 1) })
	acts.register("thicker", shortcutList{{Rune: ']'}}, func() { b.SetWidth(b.Settings().Width + 1) })
	acts.register("clear", shortcutList{{Code: key.CodeL, Modifiers: key.ModControl}}, b.Clear)
	acts.register("save", shortcutList{{Code: key.CodeS, Modifiers: key.ModControl}}, b.Export)
	acts.register("copy", shortcutList{{Code: key.CodeC, Modifiers: key.ModControl}}, func() {
		if err := b.Copy(); err != nil {
			log.Printf("copy: %v", err)
			return
		}
		a.Notifier.Copy("drawing")
		a.status("drawing copied to clipboard")
	})
	acts.register("color", shortcutList{{Rune: '#'}}, func() {
		entry.begin()
		message = entry.prompt()
		messageUntil = time.Now().Add(time.Hour)
	})
	acts.register("quit", shortcutList{{Rune: 'q'}}, func() { quit = true })

	selectTool := func(t board.Tool) { b.SetTool(t) }
	run := func(name string) func() { return func() { acts.run(name) } }
	tb := newToolbar(a.Theme,
		[]*ToolButton{
			{label: label{text: "P:Pen"}, tool: board.ToolPen, onSelect: selectTool},
			{label: label{text: "E:Eraser"}, tool: board.ToolEraser, onSelect: selectTool},
		},
		[]*ActionButton{
			{label: label{text: "R:Rect"}, onActivate: run("rectangle")},
			{label: label{text: "C:Circle"}, onActivate: run("circle")},
			{label: label{text: "T:Triangle"}, onActivate: run("triangle")},
			{label: label{text: "X:Text"}, onActivate: run("text")},
		},
		[]*ActionButton{
			{label: label{text: "#:Color"}, onActivate: run("color")},
			{label: label{text: "Clear"}, onActivate: run("clear")},
			{label: label{text: "Save"}, onActivate: run("save")},
			{label: label{text: "Copy"}, onActivate: run("copy")},
		},
	)
	tb.layout(width)

	vp := viewport.New(width, canvasHeight(height, tb.height))
	if err := b.Mount(vp); err != nil {
		log.Printf("mount: %v", err)
		return
	}
	defer b.Unmount()

	a.setControlSender(func(ev any) { w.Send(ev) })

	hover := hit{kind: hitNone, index: -1}
	shadow := &render.ShadowCache{Shadow: render.DefaultShadow()}
	var sliding, stroking bool
	area := func() image.Rectangle { return canvasArea(width, height, tb.height) }

	for {
		switch e := w.NextEvent().(type) {
		case statusEvent:
			message = e.message
			messageUntil = time.Now().Add(2 * time.Second)
			w.Send(paint.Event{})
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			tb.layout(width)
			vp.Resize(width, canvasHeight(height, tb.height))
			w.Send(paint.Event{})
		case paint.Event:
			st := frameState{
				width:        width,
				height:       height,
				toolbar:      tb,
				settings:     b.Settings(),
				hover:        hover,
				area:         area(),
				message:      message,
				messageUntil: messageUntil,
				shadow:       shadow,
			}
			drawFrame(s, w, st, b.Surface())
		case mouse.Event:
			p := image.Pt(int(e.X), int(e.Y))
			sf := b.Surface()
			switch {
			case sliding:
				b.SetWidth(tb.slider.valueAt(p.X))
				if e.Direction == mouse.DirRelease {
					sliding = false
				}
			case stroking && sf != nil:
				pt := toSurface(placeSurface(area(), sf), e.X, e.Y)
				if e.Direction == mouse.DirRelease {
					sf.PointerUp(pt)
					stroking = false
				} else {
					sf.PointerMove(pt)
				}
			case p.Y < tb.height:
				hover = tb.hit(p)
				if e.Button != mouse.ButtonLeft || e.Direction != mouse.DirPress {
					break
				}
				switch hover.kind {
				case hitButton:
					tb.buttons[hover.index].Activate()
				case hitSwatch:
					b.SetColor(tb.swatches[hover.index].Color)
				case hitSlider:
					sliding = true
					b.SetWidth(tb.slider.valueAt(p.X))
				}
			case sf != nil:
				hover = hit{kind: hitNone, index: -1}
				r := placeSurface(area(), sf)
				if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress && p.In(r) {
					sf.PointerDown(toSurface(r, e.X, e.Y))
					stroking = true
				} else if e.Direction == mouse.DirNone && p.In(r) {
					sf.PointerMove(toSurface(r, e.X, e.Y))
				}
			}
			w.Send(paint.Event{})
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if msg, ok := entry.handle(e, b); ok {
				message = msg
				messageUntil = time.Now().Add(2 * time.Second)
				if entry.active {
					messageUntil = time.Now().Add(time.Hour)
				}
				w.Send(paint.Event{})
				continue
			}
			if name, ok := acts.lookup(e); ok {
				acts.run(name)
				if quit {
					return
				}
				w.Send(paint.Event{})
			}
		}
	}
}

func canvasHeight(height, toolbarHeight int) int {
	h := height - toolbarHeight - statusHeight
	if h < 1 {
		return 1
	}
	return h
}

// canvasArea is the region below the toolbar that the viewport describes.
func canvasArea(width, height, toolbarHeight int) image.Rectangle {
	return image.Rect(0, toolbarHeight, width, toolbarHeight+canvasHeight(height, toolbarHeight))
}

// placeSurface centres the surface raster inside area.
func placeSurface(area image.Rectangle, sf *surface.Surface) image.Rectangle {
	size := surface.RasterSize(sf.Width(), sf.Height())
	origin := area.Min.Add(image.Pt((area.Dx()-size.X)/2, (area.Dy()-size.Y)/2))
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

func toSurface(r image.Rectangle, x, y float32) surface.Point {
	return surface.Point{X: float64(x) - float64(r.Min.X), Y: float64(y) - float64(r.Min.Y)}
}

type frameState struct {
	width, height int
	toolbar       *toolbar
	settings      board.Settings
	hover         hit
	area          image.Rectangle
	message       string
	messageUntil  time.Time
	shadow        *render.ShadowCache
}

func drawFrame(s screen.Screen, w screen.Window, st frameState, sf *surface.Surface) {
	buf, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer buf.Release()
	dst := buf.RGBA()

	th := st.toolbar.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)
	if sf != nil {
		img, err := sf.Render()
		if err != nil {
			log.Printf("render: %v", err)
		} else {
			r := placeSurface(st.area, sf)
			if st.shadow != nil {
				st.shadow.Draw(dst, r)
			}
			draw.Draw(dst, r, img, image.Point{}, draw.Over)
		}
	}
	st.toolbar.draw(dst, st.width, st.settings, st.hover)

	status := st.settings.Tool.String()
	if st.message != "" && time.Now().Before(st.messageUntil) {
		status = st.message
	}
	drawText(dst, rowGap, st.height-6, status, th.Foreground)

	w.Upload(image.Point{}, buf, buf.Bounds())
	w.Publish()
}
