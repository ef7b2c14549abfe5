// Package viewport tracks the size of the view hosting a board and fans out
// resize notifications.
package viewport

import "sync"

// ResizeFunc receives the new viewport size.
type ResizeFunc func(width, height int)

type entry struct {
	id int
	fn ResizeFunc
}

// Viewport is safe for concurrent use. Listeners run on the goroutine calling
// Resize, in registration order.
type Viewport struct {
	mu            sync.Mutex
	width, height int
	next          int
	listeners     []entry
}

// New returns a viewport of the given size.
func New(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// Size returns the current width and height.
func (v *Viewport) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// OnResize registers fn and returns a function that removes it. The remove
// function may be called more than once.
func (v *Viewport) OnResize(fn ResizeFunc) (remove func()) {
	v.mu.Lock()
	id := v.next
	v.next++
	v.listeners = append(v.listeners, entry{id: id, fn: fn})
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			for i, e := range v.listeners {
				if e.id == id {
					v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Resize records the new size and notifies every listener, even when the size
// is unchanged.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	v.width, v.height = width, height
	list := make([]entry, len(v.listeners))
	copy(list, v.listeners)
	v.mu.Unlock()

	for _, e := range list {
		if e.fn != nil {
			e.fn(width, height)
		}
	}
}

// ListenerCount reports how many resize listeners are registered.
func (v *Viewport) ListenerCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
