package surface

import (
	"bytes"
	"errors"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func TestToDataURLPNG(t *testing.T) {
	s := New(Options{Width: 32, Height: 16, Background: grey})
	uri, err := s.ToDataURL(DataURLOptions{Format: "png", Quality: 1})
	if err != nil {
		t.Fatalf("ToDataURL: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix in %.40q", uri)
	}
	mime, data, err := DecodeDataURL(uri)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("unexpected mime %q", mime)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestToDataURLJPEG(t *testing.T) {
	s := New(Options{Width: 8, Height: 8, Background: red})
	uri, err := s.ToDataURL(DataURLOptions{Format: "jpeg", Quality: 0.5})
	if err != nil {
		t.Fatalf("ToDataURL: %v", err)
	}
	_, data, err := DecodeDataURL(uri)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("jpeg decode: %v", err)
	}
}

func TestToDataURLUnsupportedFormat(t *testing.T) {
	s := New(Options{Width: 8, Height: 8})
	if _, err := s.ToDataURL(DataURLOptions{Format: "gif"}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestJPEGQuality(t *testing.T) {
	tests := map[float64]int{1: 100, 0.5: 50, 0: 100, -2: 100, 3: 100, 0.001: 1}
	for in, want := range tests {
		if got := jpegQuality(in); got != want {
			t.Errorf("jpegQuality(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestDecodeDataURLErrors(t *testing.T) {
	for _, uri := range []string{
		"",
		"image/png;base64,AAAA",
		"data:image/png;base64",
		"data:image/png,AAAA",
		"data:image/png;base64,!!!",
	} {
		if _, _, err := DecodeDataURL(uri); err == nil {
			t.Errorf("expected error for %q", uri)
		}
	}
}
