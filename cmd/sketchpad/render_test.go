package main

import (
	"bytes"
	"errors"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/sketchpad/internal/board"
	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/surface"
)

func testRoot(t *testing.T) *root {
	t.Helper()
	return &root{program: "sketchpad", config: config.New(), saveDir: t.TempDir()}
}

func TestRenderPNG(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseRenderCmd([]string{"color=red", "size=10", "shape=rectangle", "stroke=10,10:100,100"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	f, err := os.Open(filepath.Join(r.saveDir, "canvas-drawing.png"))
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Fatalf("unexpected size %v", b)
	}
	cr, cg, _, _ := img.At(400, 200).RGBA()
	if cr>>8 < 250 || cg>>8 > 5 {
		t.Fatalf("expected the centred rectangle to be red, got %v", img.At(400, 200))
	}
}

func TestRenderPNGUsesBoardExport(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseRenderCmd([]string{"shape=circle"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var name, uri string
	cmd.download = board.DownloaderFunc(func(n, u string) error {
		name, uri = n, u
		return nil
	})
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if name != board.DownloadName {
		t.Fatalf("download name %q, want %q", name, board.DownloadName)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("expected a png data url, got %.40q", uri)
	}
	if _, err := os.Stat(filepath.Join(r.saveDir, board.DownloadName)); !os.IsNotExist(err) {
		t.Fatalf("render wrote a file beside the downloader: %v", err)
	}

	cmd, err = parseRenderCmd([]string{"-output", "art.png", "shape=circle"}, r)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(r.saveDir, "art.png")); err != nil {
		t.Fatalf("expected art.png: %v", err)
	}
}

func TestRenderFormats(t *testing.T) {
	r := testRoot(t)

	cmd, err := parseRenderCmd([]string{"-format", "pdf", "-output", "out.pdf", "shape=text"}, r)
	if err != nil {
		t.Fatalf("parse pdf: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run pdf: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(r.saveDir, "out.pdf"))
	if err != nil || !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected a pdf, got %v", err)
	}

	dir := filepath.Join(t.TempDir(), "nested")
	cmd, err = parseRenderCmd([]string{"-format", "jpeg", "-dir", dir, "-width", "100", "-height", "50"}, r)
	if err != nil {
		t.Fatalf("parse jpeg: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run jpeg: %v", err)
	}
	f, err := os.Open(filepath.Join(dir, "canvas-drawing.jpg"))
	if err != nil {
		t.Fatalf("open jpeg: %v", err)
	}
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	if err != nil || cfg.Width != 80 || cfg.Height != 40 {
		t.Fatalf("unexpected jpeg %+v %v", cfg, err)
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	_, err := parseRenderCmd([]string{"-format", "gif"}, testRoot(t))
	if !errors.Is(err, surface.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
