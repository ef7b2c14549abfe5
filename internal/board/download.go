package board

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/sketchpad/internal/surface"
)

// DownloadName is the file name used for exported drawings.
const DownloadName = "canvas-drawing.png"

// Downloader receives an exported drawing as a data URI.
type Downloader interface {
	Download(name, dataURL string) error
}

// DownloaderFunc adapts a function to Downloader.
type DownloaderFunc func(name, dataURL string) error

func (f DownloaderFunc) Download(name, dataURL string) error { return f(name, dataURL) }

// FileDownloader writes downloads into Dir, the working directory when empty.
type FileDownloader struct {
	Dir string
	// OnSaved, when set, is called with the written path.
	OnSaved func(path string)
}

func (d FileDownloader) Download(name, dataURL string) error {
	_, data, err := surface.DecodeDataURL(dataURL)
	if err != nil {
		return err
	}
	path := filepath.Join(d.Dir, filepath.Base(name))
	if d.Dir != "" {
		if err := os.MkdirAll(d.Dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", d.Dir, err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		if cerr := out.Close(); cerr != nil {
			return fmt.Errorf("write %s: %w (close: %v)", path, err, cerr)
		}
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if d.OnSaved != nil {
		d.OnSaved(path)
	}
	return nil
}
