package image

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func encode(t *testing.T, format string, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		t.Fatalf("unknown format %q", format)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", format, err)
	}
	return buf.Bytes()
}

func TestSizeFromBytes(t *testing.T) {
	tests := []struct {
		format string
		w, h   int
	}{
		{"png", 16, 9},
		{"bmp", 7, 3},
		{"tiff", 40, 120},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := SizeFromBytes(encode(t, tt.format, tt.w, tt.h))
			if err != nil {
				t.Fatalf("SizeFromBytes() error = %v", err)
			}
			want := Size{Width: tt.w, Height: tt.h, Format: tt.format}
			if got != want {
				t.Errorf("SizeFromBytes() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestSizeFromBytes_Empty(t *testing.T) {
	if _, err := SizeFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("SizeFromBytes(nil) error = %v, want ErrEmptyData", err)
	}
}

func TestSizeFromBytes_Unsupported(t *testing.T) {
	_, err := SizeFromBytes([]byte("definitely not an image header"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SizeFromBytes() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artwork.png")
	if err := os.WriteFile(path, encode(t, "png", 800, 600), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSize(path)
	if err != nil {
		t.Fatalf("LoadSize() error = %v", err)
	}
	if got.Width != 800 || got.Height != 600 {
		t.Errorf("LoadSize() = %dx%d, want 800x600", got.Width, got.Height)
	}
}

func TestLoadSize_Missing(t *testing.T) {
	_, err := LoadSize(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSize() error = %v, want os.ErrNotExist", err)
	}
}
