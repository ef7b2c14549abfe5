package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/sketchpad/internal/board"
	"github.com/example/sketchpad/internal/pdfexport"
	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/viewport"
)

const (
	defaultViewportWidth  = 1000
	defaultViewportHeight = 500
)

type renderCmd struct {
	*root
	fs      *flag.FlagSet
	width   int
	height  int
	dir     string
	output  string
	format  string
	quality float64
	ops     []op
	// download receives png exports; nil means a file at path().
	download board.Downloader
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	c := &renderCmd{root: r, fs: fs}
	fs.IntVar(&c.width, "width", defaultViewportWidth, "viewport width; the surface covers 80% of it")
	fs.IntVar(&c.height, "height", defaultViewportHeight, "viewport height; the surface covers 80% of it")
	fs.StringVar(&c.dir, "dir", "", "output directory (defaults to the configured save directory)")
	fs.StringVar(&c.output, "output", "", "output file name (defaults to canvas-drawing with the format extension)")
	fs.StringVar(&c.format, "format", "png", "output format: png, jpeg or pdf")
	fs.Float64Var(&c.quality, "quality", 0.92, "jpeg quality in (0,1]")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("width and height must be positive")
	}
	c.format = strings.ToLower(c.format)
	switch c.format {
	case "png", "jpeg", "jpg", "pdf":
	default:
		return nil, fmt.Errorf("unsupported format %q: %w", c.format, surface.ErrUnsupportedFormat)
	}
	if c.dir == "" && r != nil {
		c.dir = r.saveDir
	}
	ops, err := parseOps(fs.Args())
	if err != nil {
		return nil, err
	}
	c.ops = ops
	return c, nil
}

func (c *renderCmd) Program() string        { return c.root.subcommand("render") }
func (c *renderCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *renderCmd) Template() string       { return "render.txt" }

// path is where the drawing is written.
func (c *renderCmd) path() string {
	name := c.output
	if name == "" {
		name = strings.TrimSuffix(board.DownloadName, filepath.Ext(board.DownloadName))
		switch c.format {
		case "jpeg", "jpg":
			name += ".jpg"
		case "pdf":
			name += ".pdf"
		default:
			name = board.DownloadName
		}
	}
	if filepath.IsAbs(name) || c.dir == "" {
		return name
	}
	return filepath.Join(c.dir, name)
}

// fileDownloader writes the board's export to path(), honouring -output.
func (c *renderCmd) fileDownloader() board.Downloader {
	path := c.path()
	fd := board.FileDownloader{Dir: filepath.Dir(path)}
	return board.DownloaderFunc(func(_, dataURL string) error {
		return fd.Download(filepath.Base(path), dataURL)
	})
}

func (c *renderCmd) Run() error {
	vp := viewport.New(c.width, c.height)
	d := c.download
	if d == nil {
		d = c.fileDownloader()
	}
	b := board.New(board.WithSettings(c.root.settings()), board.WithDownloader(d))
	return b.Run(vp, func(b *board.Board) error {
		if err := runOps(&scene{board: b, viewport: vp}, c.ops); err != nil {
			return err
		}
		path, err := c.write(b)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, path)
		c.root.notifySave(path)
		return nil
	})
}

// write saves the drawing. PNG goes through the board's export; jpeg and pdf
// are encoded here.
func (c *renderCmd) write(b *board.Board) (string, error) {
	if c.format == "png" {
		if err := b.Download(); err != nil {
			return "", fmt.Errorf("save: %w", err)
		}
		return c.path(), nil
	}
	opts := surface.DataURLOptions{Format: "png", Quality: 1}
	if c.format == "jpeg" || c.format == "jpg" {
		opts = surface.DataURLOptions{Format: "jpeg", Quality: c.quality}
	}
	data, _, err := b.Surface().Encode(opts)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	path := c.path()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if c.format == "pdf" {
		if err := pdfexport.WriteFile(path, data); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		return path, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
