// Package imageio adapts image files on disk to and from gridmap grids.
// It owns the I/O boundary of the converter: path validation, decoding a
// color image into a Grid[Sample3], and persisting a Grid[Sample1] as a
// single-channel image. All errors carry the offending path.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/FriedImage/gridmap/gridmap"
)

var (
	// ErrNoExtension indicates the file name has no extension to infer a
	// format from.
	ErrNoExtension = errors.New("file extension not found")

	// ErrUnsupportedFormat indicates the extension is not one of the
	// supported image formats.
	ErrUnsupportedFormat = errors.New("unsupported image format (supported: .jpg, .jpeg, .png, .bmp, .tiff)")

	// ErrBadNameLength indicates the full file name is outside the accepted
	// 4-255 character range.
	ErrBadNameLength = errors.New("file name must be between 4 and 255 characters")
)

var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
}

// ValidatePath checks that name looks like a usable image path: it must
// carry a supported extension (case-insensitive) and its full length must be
// between 4 and 255 characters. It does not touch the filesystem.
func ValidatePath(name string) error {
	if len(name) < 4 || len(name) > 255 {
		return fmt.Errorf("%w: %q", ErrBadNameLength, name)
	}

	ext := Extension(name)
	if ext == "" {
		return fmt.Errorf("%w: %q", ErrNoExtension, name)
	}
	if !supportedExtensions[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return nil
}

// Extension returns the lower-cased extension of name, empty if none.
func Extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// Decode reads the image at path and converts it to a 3-channel grid sized
// to the image's pixel dimensions. The alpha channel, if present, is
// dropped.
func Decode(path string) (*gridmap.Grid[gridmap.Sample3], error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	grid := gridmap.NewGrid[gridmap.Sample3](width, height)
	for y := 0; y < height; y++ {
		row := grid.Row(y)
		line := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			row[x] = gridmap.Sample3{line[x*4], line[x*4+1], line[x*4+2]}
		}
	}
	return grid, nil
}

// EncodeGray persists a single-channel grid as an image at path, with the
// format inferred from the extension. A failed encode leaves no prior state
// corrupted; the caller decides whether to retry.
func EncodeGray(path string, g *gridmap.Grid[gridmap.Sample1]) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	gray := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		copy(gray.Pix[y*gray.Stride:y*gray.Stride+g.Width()], g.Row(y))
	}

	if err := imaging.Save(gray, path); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
