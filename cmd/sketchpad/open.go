package main

import (
	"flag"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/board"
	"github.com/example/sketchpad/internal/clipboard"
)

type openCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
}

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	c := &openCmd{root: r, fs: fs}
	w, h := appstate.DefaultWidth, appstate.DefaultHeight
	if r != nil && r.config != nil {
		if r.config.WindowWidth > 0 {
			w = r.config.WindowWidth
		}
		if r.config.WindowHeight > 0 {
			h = r.config.WindowHeight
		}
	}
	fs.IntVar(&c.width, "width", w, "window width")
	fs.IntVar(&c.height, "height", h, "window height")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *openCmd) Program() string        { return c.root.subcommand("open") }
func (c *openCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *openCmd) Template() string       { return "open.txt" }

func (c *openCmd) Run() error {
	var st *appstate.AppState
	downloader := board.FileDownloader{
		Dir: c.root.saveDir,
		OnSaved: func(path string) {
			c.root.notifySave(path)
			st.Saved(path)
		},
	}
	b := board.New(
		board.WithSettings(c.root.settings()),
		board.WithDownloader(downloader),
		board.WithClipboard(clipboard.WriteImage),
	)
	st = appstate.New(
		appstate.WithBoard(b),
		appstate.WithTheme(c.root.activeTheme),
		appstate.WithSize(c.width, c.height),
		appstate.WithNotifier(c.root.notifier),
	)
	st.Run()
	return nil
}
