package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/drawings
color = "#ff0000"
width = 12
window_width = 1024

[notify]
save = false
copy = true

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/drawings" {
		t.Errorf("Expected save_dir '/tmp/drawings', got '%s'", cfg.SaveDir)
	}
	if cfg.Color != "#ff0000" {
		t.Errorf("Expected color '#ff0000', got %q", cfg.Color)
	}
	if cfg.Width != 12 || cfg.WindowWidth != 1024 || cfg.WindowHeight != 0 {
		t.Errorf("Unexpected sizes: %d %d %d", cfg.Width, cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Notify.Save {
		t.Error("Expected notify.save to be false")
	}
	if !cfg.Notify.Copy {
		t.Error("Expected notify.copy to be true")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad width", "width = wide"},
		{"bad bool", "[notify]\nsave = maybe"},
		{"bad colour", "[theme.x]\nBackground = red"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.input)); err == nil {
				t.Fatalf("expected error for %q", tc.input)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/drawings
width = 7

[notify]
save = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Width != cfg2.Width {
		t.Errorf("Width mismatch: %d vs %d", cfg.Width, cfg2.Width)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestTOML(t *testing.T) {
	input := `theme = "dark"
color = "navy"
width = 3

[notify]
save = true

[themes.night]
Background = "#101010"
`
	cfg, err := ParseTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Color != "navy" || cfg.Width != 3 || !cfg.Notify.Save {
		t.Fatalf("unexpected config %+v", cfg)
	}
	night := cfg.Themes["night"]
	if night == nil || night.Background.R != 0x10 || night.Name != "night" {
		t.Fatalf("unexpected theme %+v", night)
	}

	var buf bytes.Buffer
	if err := WriteTOML(&buf, cfg); err != nil {
		t.Fatalf("WriteTOML: %v", err)
	}
	again, err := ParseTOML(&buf)
	if err != nil {
		t.Fatalf("ParseTOML after write: %v\n%s", err, buf.String())
	}
	if again.Color != cfg.Color || again.Notify != cfg.Notify || *again.Themes["night"] != *night {
		t.Fatalf("round trip mismatch: %+v", again)
	}
}

func TestLoaderFindsTOML(t *testing.T) {
	home := t.TempDir()
	l := &Loader{Home: home}
	if got := l.GetConfigPath(); got != "" {
		t.Fatalf("expected no config, got %s", got)
	}

	cfg := New()
	cfg.SaveDir = "/srv/drawings"
	path := filepath.Join(l.Dir(), "config.toml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SaveDir != "/srv/drawings" {
		t.Fatalf("unexpected save dir %q", loaded.SaveDir)
	}

	rc := filepath.Join(l.Dir(), "config.rc")
	if err := os.WriteFile(rc, []byte("save_dir = /rc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := l.GetConfigPath(); got != rc {
		t.Fatalf("expected rc file to take precedence, got %s", got)
	}
}
