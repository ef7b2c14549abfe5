package viewport

import "testing"

func TestResizeNotifiesInOrder(t *testing.T) {
	v := New(100, 50)
	var got []string
	v.OnResize(func(w, h int) { got = append(got, "a") })
	v.OnResize(func(w, h int) { got = append(got, "b") })
	v.Resize(300, 200)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected order %v", got)
	}
	if w, h := v.Size(); w != 300 || h != 200 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

func TestRemoveListener(t *testing.T) {
	v := New(10, 10)
	calls := 0
	remove := v.OnResize(func(int, int) { calls++ })
	keep := v.OnResize(func(int, int) {})
	defer keep()

	remove()
	remove()
	if n := v.ListenerCount(); n != 1 {
		t.Fatalf("expected 1 listener, got %d", n)
	}
	v.Resize(20, 20)
	if calls != 0 {
		t.Fatalf("removed listener was called %d times", calls)
	}
}

func TestResizeWithoutListeners(t *testing.T) {
	v := New(1, 1)
	v.Resize(5, 6)
	if w, h := v.Size(); w != 5 || h != 6 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}
