package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool `toml:"save"`
	Copy bool `toml:"copy"`
}

// Config holds the application configuration.
type Config struct {
	Theme        string `toml:"theme"`
	SaveDir      string `toml:"save_dir"`
	Color        string `toml:"color"`
	Width        int    `toml:"width"`
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	Notify       Notify `toml:"notify"`

	Themes map[string]*theme.Theme `toml:"-"`
}

// New creates a new Config with defaults. Zero values for Color, Width and
// the window size mean "use the built-in default".
func New() *Config {
	return &Config{
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.Color != "" {
		fmt.Fprintf(&sb, "color = %s\n", c.Color)
	}
	if c.Width != 0 {
		fmt.Fprintf(&sb, "width = %d\n", c.Width)
	}
	if c.WindowWidth != 0 {
		fmt.Fprintf(&sb, "window_width = %d\n", c.WindowWidth)
	}
	if c.WindowHeight != 0 {
		fmt.Fprintf(&sb, "window_height = %d\n", c.WindowHeight)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var names []string
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
