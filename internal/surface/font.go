package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error

	facesMu sync.Mutex
	faces   = map[float64]text.Face{}
)

func loadFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("load font: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

func faceForSize(size float64) (text.Face, error) {
	src, err := loadFont()
	if err != nil {
		return nil, err
	}
	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f := src.Face(size)
	faces[size] = f
	return f, nil
}

// measureText returns the advance width of s. When the font cannot be loaded
// it falls back to an average glyph width.
func measureText(s string, size float64) float64 {
	face, err := faceForSize(size)
	if err != nil {
		return float64(len([]rune(s))) * size * 0.6
	}
	w, _ := text.Measure(s, face)
	return w
}
