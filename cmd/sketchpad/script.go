package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/board"
	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/viewport"
)

var errEmptyOp = errors.New("empty operation")

// scene is what scripted operations act on.
type scene struct {
	board    *board.Board
	viewport *viewport.Viewport
}

// op is one scripted board operation.
type op func(sc *scene) error

// parseOps parses every argument, stopping at the first invalid one.
func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, a := range args {
		o, err := parseOp(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

func runOps(sc *scene, ops []op) error {
	for _, o := range ops {
		if err := o(sc); err != nil {
			return err
		}
	}
	return nil
}

// parseOp parses a single `name=value` operation or the bare `clear`.
func parseOp(s string) (op, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyOp
	}
	name, value, _ := strings.Cut(s, "=")
	switch strings.ToLower(name) {
	case "clear":
		return func(sc *scene) error { sc.board.Clear(); return nil }, nil
	case "tool":
		t, err := board.ParseTool(value)
		if err != nil {
			return nil, err
		}
		return func(sc *scene) error { sc.board.SetTool(t); return nil }, nil
	case "color", "colour":
		c, err := board.ParseColor(value)
		if err != nil {
			return nil, err
		}
		return func(sc *scene) error { sc.board.SetColor(c); return nil }, nil
	case "size", "width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", value, err)
		}
		return func(sc *scene) error { sc.board.SetWidth(n); return nil }, nil
	case "shape":
		// Rejected at parse time so a typo fails the script; AddShape itself ignores unknown kinds.
		kind, ok := board.ParseShape(value)
		if !ok {
			return nil, fmt.Errorf("unknown shape %q (want one of %s)", value, shapeNames())
		}
		return func(sc *scene) error { sc.board.AddShape(kind); return nil }, nil
	case "stroke":
		pts, err := parsePoints(value)
		if err != nil {
			return nil, err
		}
		if len(pts) < 2 {
			return nil, fmt.Errorf("stroke needs at least two points")
		}
		return func(sc *scene) error { return pointer(sc, pts) }, nil
	case "erase", "click":
		pts, err := parsePoints(value)
		if err != nil {
			return nil, err
		}
		if len(pts) != 1 {
			return nil, fmt.Errorf("%s takes a single point", name)
		}
		return func(sc *scene) error { return pointer(sc, pts) }, nil
	case "resize":
		w, h, err := parseSize(value)
		if err != nil {
			return nil, err
		}
		return func(sc *scene) error { sc.viewport.Resize(w, h); return nil }, nil
	}
	return nil, fmt.Errorf("unknown operation %q", s)
}

// pointer presses at the first point, moves through the rest and releases
// at the last.
func pointer(sc *scene, pts []surface.Point) error {
	s := sc.board.Surface()
	if s == nil {
		return fmt.Errorf("board not mounted")
	}
	s.PointerDown(pts[0])
	for _, p := range pts[1:] {
		s.PointerMove(p)
	}
	s.PointerUp(pts[len(pts)-1])
	return nil
}

// parsePoints parses `x,y:x,y:...`.
func parsePoints(s string) ([]surface.Point, error) {
	var pts []surface.Point
	for _, part := range strings.Split(s, ":") {
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q (want x,y)", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", part, err)
		}
		pts = append(pts, surface.Point{X: x, Y: y})
	}
	return pts, nil
}

// parseSize parses `WxH` with both sides positive.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

func shapeNames() string {
	names := make([]string, len(board.Shapes))
	for i, s := range board.Shapes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
