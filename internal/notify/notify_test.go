package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/sketchpad/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func recorder(out *[]sent) SendFunc {
	return func(title, body string, opts platform.Options) error {
		*out = append(*out, sent{title, body, opts})
		return nil
	}
}

func TestDisabledEventsAreSilent(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Save("x.png")
	n.Copy("")
	if len(got) != 0 {
		t.Fatalf("expected no notifications, got %v", got)
	}

	var nilNotifier *Notifier
	nilNotifier.Enable(EventSave, true)
	nilNotifier.Save("x.png")
}

func TestSaveUsesFileAsIcon(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Enable(EventSave, true)

	path := filepath.Join(t.TempDir(), "canvas-drawing.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n.Save(path)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if got[0].title != "Sketchpad" || got[0].body != "Saved "+path || got[0].opts.IconPath != path {
		t.Fatalf("unexpected notification %+v", got[0])
	}
}

func TestCopyDefaultsDetail(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got))
	n.Enable(EventCopy, true)
	n.Copy(" ")
	if len(got) != 1 || got[0].body != "Copied drawing to clipboard" {
		t.Fatalf("unexpected notifications %+v", got)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("SKETCHPAD_NOTIFY_TITLE", "Board")
	t.Setenv("SKETCHPAD_NOTIFY_COPY_TEXT", "clip: %s")
	prefs := LoadPreferences()
	if prefs.Title != "Board" {
		t.Fatalf("unexpected title %q", prefs.Title)
	}
	if prefs.Events[EventCopy].Template != "clip: %s" {
		t.Fatalf("unexpected copy template %q", prefs.Events[EventCopy].Template)
	}
	if prefs.Events[EventSave].Template != "Saved %s" {
		t.Fatalf("save template should keep its default")
	}
}

func TestSendErrorIsLogged(t *testing.T) {
	n := New(DefaultPreferences()).WithSender(func(string, string, platform.Options) error {
		return errors.New("no bus")
	})
	n.Enable(EventCopy, true)
	n.Copy("drawing")
}
