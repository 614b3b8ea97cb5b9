// Package image reads artwork dimensions from encoded image headers.
//
// Only the header is decoded; pixel data is never loaded. PNG, JPEG and GIF
// come from the standard library, BMP, TIFF and WebP from golang.org/x/image.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when no registered decoder recognises the data.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Size is the pixel size of an encoded image.
type Size struct {
	Width, Height int
	// Format is the registered format name, e.g. "png" or "webp".
	Format string
}

// LoadSize reads the dimensions of the image file at path.
func LoadSize(path string) (Size, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Size{}, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeSize(f)
}

// SizeFromBytes reads the dimensions of an image held in memory.
func SizeFromBytes(data []byte) (Size, error) {
	if len(data) == 0 {
		return Size{}, ErrEmptyData
	}
	return DecodeSize(bytes.NewReader(data))
}

// DecodeSize reads the dimensions from the image header in r.
func DecodeSize(r io.Reader) (Size, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Size{}, ErrUnsupportedFormat
		}
		return Size{}, fmt.Errorf("image: decode config: %w", err)
	}
	return Size{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
