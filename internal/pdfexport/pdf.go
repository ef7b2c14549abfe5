// Package pdfexport wraps a PNG raster into a single page PDF.
package pdfexport

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// pointsPerPixel maps CSS pixels (96 dpi) to PDF points (72 dpi).
const pointsPerPixel = 0.75

// Write emits a PDF whose only page is exactly the size of the PNG in data.
func Write(w io.Writer, data []byte) error {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("read png: %w", err)
	}
	pw := float64(cfg.Width) * pointsPerPixel
	ph := float64(cfg.Height) * pointsPerPixel

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("drawing", opts, bytes.NewReader(data))
	pdf.ImageOptions("drawing", 0, 0, pw, ph, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}

// WriteFile writes the PDF to path.
func WriteFile(path string, data []byte) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, data); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
