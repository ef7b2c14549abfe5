package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/sketchpad/internal/board"
	"github.com/example/sketchpad/internal/viewport"
)

type interactiveCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	c := &interactiveCmd{root: r, fs: fs, in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	fs.IntVar(&c.width, "width", defaultViewportWidth, "viewport width; the surface covers 80% of it")
	fs.IntVar(&c.height, "height", defaultViewportHeight, "viewport height; the surface covers 80% of it")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *interactiveCmd) Program() string        { return c.root.subcommand("interactive") }
func (c *interactiveCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *interactiveCmd) Template() string       { return "interactive.txt" }

func (c *interactiveCmd) Run() error {
	vp := viewport.New(c.width, c.height)
	dir := ""
	if c.root != nil {
		dir = c.root.saveDir
	}
	b := board.New(
		board.WithSettings(c.root.settings()),
		board.WithDownloader(board.FileDownloader{
			Dir: dir,
			OnSaved: func(path string) {
				fmt.Fprintf(c.out, "saved %s\n", path)
				c.root.notifySave(path)
			},
		}),
	)
	return b.Run(vp, func(b *board.Board) error {
		return c.loop(&scene{board: b, viewport: vp})
	})
}

func (c *interactiveCmd) loop(sc *scene) error {
	fmt.Fprintln(c.out, "Enter commands (type 'exit' to quit)")
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprintln(c.out, "operations: tool=pen|eraser color=C size=N shape=K stroke=x,y:x,y erase=x,y resize=WxH clear")
			fmt.Fprintln(c.out, "commands: save objects state help exit")
			continue
		case "save":
			sc.board.Export()
			continue
		case "objects":
			c.listObjects(sc.board)
			continue
		case "state":
			st := sc.board.Settings()
			s := sc.board.Surface()
			fmt.Fprintf(c.out, "tool=%s color=%s size=%d surface=%gx%g\n",
				st.Tool, board.FormatColor(st.Color), st.Width, s.Width(), s.Height())
			continue
		}
		for _, field := range strings.Fields(line) {
			o, err := parseOp(field)
			if err != nil {
				fmt.Fprintln(c.errOut, err)
				break
			}
			if err := o(sc); err != nil {
				fmt.Fprintln(c.errOut, err)
				break
			}
		}
	}
}

func (c *interactiveCmd) listObjects(b *board.Board) {
	objs := b.Surface().Objects()
	if len(objs) == 0 {
		fmt.Fprintln(c.out, "no objects")
		return
	}
	active := b.Surface().ActiveObject()
	for i, o := range objs {
		marker := " "
		if o == active {
			marker = "*"
		}
		bb := o.Bounds()
		fmt.Fprintf(c.out, "%s %2d: %-8s %s (%.1f,%.1f)-(%.1f,%.1f)\n",
			marker, i, o.Kind(), o.ID(), bb.MinX, bb.MinY, bb.MaxX, bb.MaxY)
	}
}
