package surface

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strings"
)

// DataURLOptions selects the encoding used by ToDataURL.
type DataURLOptions struct {
	// Format is "png" or "jpeg". Empty means png.
	Format string
	// Quality in (0, 1] applies to jpeg only. Values outside that range mean 1.
	Quality float64
}

// MIMEType returns the media type for format.
func MIMEType(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "png":
		return "image/png", nil
	case "jpeg", "jpg":
		return "image/jpeg", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Encode renders the surface and returns the encoded bytes.
func (s *Surface) Encode(opts DataURLOptions) ([]byte, string, error) {
	mime, err := MIMEType(opts.Format)
	if err != nil {
		return nil, "", err
	}
	if _, err := s.Render(); err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	switch mime {
	case "image/jpeg":
		err = s.dc.EncodeJPEG(&buf, jpegQuality(opts.Quality))
	default:
		err = s.dc.EncodePNG(&buf)
	}
	if err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", mime, err)
	}
	return buf.Bytes(), mime, nil
}

// ToDataURL renders the surface and returns it as a base64 data URI.
func (s *Surface) ToDataURL(opts DataURLOptions) (string, error) {
	data, mime, err := s.Encode(opts)
	if err != nil {
		return "", err
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func jpegQuality(q float64) int {
	if q <= 0 || q > 1 || math.IsNaN(q) {
		q = 1
	}
	v := int(math.Round(q * 100))
	if v < 1 {
		v = 1
	}
	return v
}

// DecodeDataURL splits a base64 data URI into its media type and payload.
func DecodeDataURL(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data url")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data url has no payload")
	}
	mime, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("data url is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data url: %w", err)
	}
	return mime, data, nil
}
