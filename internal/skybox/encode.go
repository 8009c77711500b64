package skybox

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// JPEGQuality is used for .jpg output.
const JPEGQuality = 95

// ErrUnsupportedFormat is returned for output names with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encode writes img to w in the format named by ext (".png", ".jpg",
// ".jpeg", ".tif" or ".tiff").
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Supported reports whether Encode knows the extension.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return true
	}
	return false
}

// Save writes img to path, choosing the encoder from the file extension.
func Save(path string, img image.Image) (err error) {
	ext := filepath.Ext(path)
	if !Supported(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create skybox image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close skybox image: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, img, ext); err != nil {
		return fmt.Errorf("encode skybox image: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write skybox image: %w", err)
	}
	return nil
}
