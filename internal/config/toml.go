package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/example/sketchpad/internal/theme"
)

// tomlFile mirrors Config with theme tables expressed as string maps.
type tomlFile struct {
	Config
	Themes map[string]map[string]string `toml:"themes,omitempty"`
}

// ParseTOML reads configuration in TOML form. Themes live under
// [themes.NAME] tables whose keys are theme field names.
func ParseTOML(r io.Reader) (*Config, error) {
	var f tomlFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	cfg := f.Config
	cfg.Themes = make(map[string]*theme.Theme, len(f.Themes))
	for name, fields := range f.Themes {
		t := theme.Default()
		t.Name = name
		for key, value := range fields {
			if err := theme.Set(t, key, value); err != nil {
				return nil, fmt.Errorf("toml: themes.%s: %w", name, err)
			}
		}
		cfg.Themes[name] = t
	}
	return &cfg, nil
}

// WriteTOML encodes c in the form ParseTOML reads.
func WriteTOML(w io.Writer, c *Config) error {
	f := tomlFile{Config: *c}
	if len(c.Themes) > 0 {
		f.Themes = make(map[string]map[string]string, len(c.Themes))
		for name, t := range c.Themes {
			fields := map[string]string{"Name": t.Name}
			for _, field := range theme.Fields(t) {
				fields[field.Name] = theme.Hex(field.Color)
			}
			f.Themes[name] = fields
		}
	}
	return toml.NewEncoder(w).Encode(f)
}
