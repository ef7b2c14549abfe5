package surface

import "image/color"

// EventName identifies a surface event.
type EventName string

const (
	EventMouseDown        EventName = "mouse:down"
	EventMouseMove        EventName = "mouse:move"
	EventMouseUp          EventName = "mouse:up"
	EventPathCreated      EventName = "path:created"
	EventObjectAdded      EventName = "object:added"
	EventObjectRemoved    EventName = "object:removed"
	EventSelectionCreated EventName = "selection:created"
	EventSelectionCleared EventName = "selection:cleared"
)

// Event is delivered to listeners. Pointer is set for mouse events and Target
// for object and selection events.
type Event struct {
	Name    EventName
	Pointer Point
	Target  Object
}

// Listener wraps a callback so that it has a stable identity. Registering the
// same Listener twice for an event keeps a single registration.
type Listener struct {
	fn func(Event)
}

// NewListener wraps fn.
func NewListener(fn func(Event)) *Listener {
	return &Listener{fn: fn}
}

func (l *Listener) call(ev Event) {
	if l != nil && l.fn != nil {
		l.fn(ev)
	}
}

// On registers l for name. Registering an already registered listener is a no-op.
func (s *Surface) On(name EventName, l *Listener) {
	if s.disposed || l == nil {
		return
	}
	for _, existing := range s.listeners[name] {
		if existing == l {
			return
		}
	}
	if s.listeners == nil {
		s.listeners = make(map[EventName][]*Listener)
	}
	s.listeners[name] = append(s.listeners[name], l)
}

// Off removes l from name.
func (s *Surface) Off(name EventName, l *Listener) {
	list := s.listeners[name]
	for i, existing := range list {
		if existing == l {
			s.listeners[name] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// ListenerCount reports how many listeners are registered for name.
func (s *Surface) ListenerCount(name EventName) int {
	return len(s.listeners[name])
}

func (s *Surface) fire(ev Event) {
	list := s.listeners[ev.Name]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*Listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.call(ev)
	}
}

// PointerDown dispatches a press at p. In drawing mode it starts a stroke.
func (s *Surface) PointerDown(p Point) {
	if s.disposed {
		return
	}
	s.fire(Event{Name: EventMouseDown, Pointer: p})
	if s.disposed {
		return
	}
	if s.drawingMode {
		s.stroke = &stroke{points: []Point{p}, color: s.brush.Color, width: s.brush.Width}
	}
}

// PointerMove dispatches a move to p and extends the current stroke.
func (s *Surface) PointerMove(p Point) {
	if s.disposed {
		return
	}
	s.fire(Event{Name: EventMouseMove, Pointer: p})
	if s.stroke != nil {
		s.stroke.add(p)
	}
}

// PointerUp dispatches a release at p. A stroke that moved is committed as a Path.
func (s *Surface) PointerUp(p Point) {
	if s.disposed {
		return
	}
	s.fire(Event{Name: EventMouseUp, Pointer: p})
	st := s.stroke
	s.stroke = nil
	if st == nil || s.disposed {
		return
	}
	st.add(p)
	if len(st.points) < 2 {
		return
	}
	path := NewPath(st.points, st.color, st.width)
	s.Add(path)
	s.fire(Event{Name: EventPathCreated, Target: path})
}

type stroke struct {
	points []Point
	color  color.RGBA
	width  float64
}

func (st *stroke) add(p Point) {
	if last := st.points[len(st.points)-1]; last == p {
		return
	}
	st.points = append(st.points, p)
}
