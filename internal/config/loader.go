package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Set at compile time if needed
	Home         string // Defaults to the user's home directory
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
		Home:         home,
	}
}

// Load attempts to load the configuration. Files ending in .toml are decoded
// as TOML, everything else as RC.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parserFor(path)(f)
}

func parserFor(path string) func(io.Reader) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML
	}
	return Parse
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".sketchpadrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	for _, name := range []string{"config.rc", "config.toml", "sketchpad.rc"} {
		path := filepath.Join(l.Dir(), name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Dir is the XDG-style configuration directory.
func (l *Loader) Dir() string {
	return filepath.Join(l.Home, ".config", "sketchpad")
}

// Save writes cfg to path, choosing the format from its extension.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = WriteTOML(f, cfg)
	} else {
		_, err = io.WriteString(f, cfg.String())
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
