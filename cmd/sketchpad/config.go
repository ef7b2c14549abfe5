package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/sketchpad/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	format string
	output string
	out    io.Writer
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	c := &configCmd{root: r, fs: fs, out: os.Stdout}
	fs.StringVar(&c.format, "format", "rc", "config format: rc or toml")
	fs.StringVar(&c.output, "output", "", "file written by save (defaults to the loaded config file)")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.format != "rc" && c.format != "toml" {
		return nil, fmt.Errorf("unknown config format %q", c.format)
	}
	return c, nil
}

func (c *configCmd) Program() string        { return c.root.subcommand("config") }
func (c *configCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *configCmd) Template() string       { return "config.txt" }

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runPrint() error {
	if c.format == "toml" {
		return config.WriteTOML(c.out, c.root.config)
	}
	_, err := fmt.Fprint(c.out, c.root.config.String())
	return err
}

func (c *configCmd) runSave() error {
	path := c.output
	loader := config.NewLoader(version, configPathOverride)
	if path == "" {
		path = loader.GetConfigPath()
	}
	if path == "" {
		name := "config.rc"
		if c.format == "toml" {
			name = "config.toml"
		}
		path = filepath.Join(loader.Dir(), name)
	}
	if err := config.Save(path, c.root.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}
