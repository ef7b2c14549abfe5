package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/example/sketchpad/internal/config"
)

func isolatedRoot(t *testing.T) *root {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SKETCHPAD_THEME", "")
	t.Setenv("SKETCHPAD_SAVE_DIR", "")
	return newRoot()
}

func TestRootWithoutCommand(t *testing.T) {
	err := isolatedRoot(t).Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if want := "Usage: sketchpad [flags] <command>"; !strings.Contains(uerr.Error(), want) {
		t.Fatalf("expected help to contain %q, got %q", want, uerr.Error())
	}
	if !strings.Contains(uerr.Error(), "-notify-save") {
		t.Fatalf("expected flags in help, got %q", uerr.Error())
	}
}

func TestRootUnknownCommand(t *testing.T) {
	err := isolatedRoot(t).Run([]string{"paint"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestEnvironmentPrecedence(t *testing.T) {
	r := isolatedRoot(t)
	dir := t.TempDir()
	t.Setenv("SKETCHPAD_SAVE_DIR", dir)
	t.Setenv("SKETCHPAD_THEME", "dark")
	r.config.SaveDir = "/ignored"
	if err := r.Run([]string{"render"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if r.saveDir != dir {
		t.Fatalf("expected env save dir, got %q", r.saveDir)
	}
	if r.activeTheme.Name != "dark" {
		t.Fatalf("expected env theme, got %q", r.activeTheme.Name)
	}
}

func TestConfigSettingsApply(t *testing.T) {
	r := &root{config: config.New()}
	r.config.Color = "teal"
	r.config.Width = 99
	s := r.settings()
	if s.Width != 50 || s.Color.G != 128 || s.Color.B != 128 {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestConfigPrint(t *testing.T) {
	r := &root{program: "sketchpad", config: config.New()}
	r.config.SaveDir = "/tmp/drawings"
	for _, format := range []string{"rc", "toml"} {
		cmd, err := parseConfigCmd([]string{"-format", format, "print"}, r)
		if err != nil {
			t.Fatalf("parse %s: %v", format, err)
		}
		var out bytes.Buffer
		cmd.out = &out
		if err := cmd.Run(); err != nil {
			t.Fatalf("print %s: %v", format, err)
		}
		if !strings.Contains(out.String(), "/tmp/drawings") {
			t.Fatalf("%s output missing save dir: %s", format, out.String())
		}
	}
	if _, err := parseConfigCmd([]string{"-format", "yaml"}, r); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestColorsMarksCurrent(t *testing.T) {
	r := &root{program: "sketchpad", config: config.New()}
	r.config.Color = "#ff0000"
	cmd, err := parseColorsCmd(nil, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "*  2: red") {
		t.Fatalf("expected red to be marked:\n%s", out.String())
	}
}
