package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/image/colornames"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/board"
)

type colorsCmd struct {
	*root
	fs    *flag.FlagSet
	all   bool
	out   io.Writer
	color string
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	cmd := &colorsCmd{root: r, fs: fs, out: os.Stdout}
	fs.BoolVar(&cmd.all, "all", false, "list every named color accepted by color=")
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	cmd.color = board.FormatColor(r.settings().Color)
	return cmd, nil
}

func (c *colorsCmd) Program() string        { return c.root.subcommand("colors") }
func (c *colorsCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *colorsCmd) Template() string       { return "colors.txt" }

func (c *colorsCmd) Run() error {
	if c.all {
		names := make([]string, 0, len(colornames.Map))
		for name := range colornames.Map {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			col := colornames.Map[name]
			fmt.Fprintf(c.out, "%-22s %s %s\n", name, board.FormatColor(col), swatchBlock(col.R, col.G, col.B))
		}
		return nil
	}
	fmt.Fprintln(c.out, "toolbar palette colors (* marks the current color):")
	for idx, entry := range appstate.PaletteColors() {
		marker := " "
		hex := board.FormatColor(entry.Color)
		if hex == c.color {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %2d: %-12s %s %s\n", marker, idx, entry.Name, hex, swatchBlock(entry.Color.R, entry.Color.G, entry.Color.B))
	}
	return nil
}

func swatchBlock(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
}
