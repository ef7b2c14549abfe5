package board

import (
	"errors"
	"log"

	"github.com/example/sketchpad/internal/surface"
)

var (
	errNotMounted  = errors.New("board not mounted")
	errNoClipboard = errors.New("no clipboard configured")
)

// Clear removes every object and restores the background.
func (b *Board) Clear() {
	s := b.Surface()
	if s == nil {
		return
	}
	s.Clear()
	s.SetBackgroundColor(b.background)
}

// Export saves the drawing as DownloadName. Failures are logged.
func (b *Board) Export() {
	if b.Surface() == nil {
		return
	}
	if err := b.Download(); err != nil {
		log.Printf("save: %v", err)
	}
}

// Download encodes the surface as a full quality PNG data URI and passes it to
// the downloader.
func (b *Board) Download() error {
	s := b.Surface()
	if s == nil {
		return errNotMounted
	}
	uri, err := s.ToDataURL(surface.DataURLOptions{Format: "png", Quality: 1})
	if err != nil {
		return err
	}
	if b.downloader == nil {
		return errors.New("no downloader configured")
	}
	return b.downloader.Download(DownloadName, uri)
}

// Copy renders the surface and hands it to the clipboard function.
func (b *Board) Copy() error {
	s := b.Surface()
	if s == nil {
		return errNotMounted
	}
	if b.copyImage == nil {
		return errNoClipboard
	}
	img, err := s.Render()
	if err != nil {
		return err
	}
	return b.copyImage(img)
}
