package label

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFace is the built-in 7x13 monospace bitmap font used when no face is
// supplied.
var DefaultFace font.Face = basicfont.Face7x13

const (
	defaultFaceSize = 12
	minFaceSize     = 6
	defaultFaceDPI  = 72
)

// LoadFace parses TrueType/OpenType data into a face of the given point size.
// Sizes below 6pt are raised to 6pt; a non-positive dpi selects 72.
func LoadFace(data []byte, size, dpi float64) (font.Face, error) {
	if size <= 0 {
		size = defaultFaceSize
	}
	if size < minFaceSize {
		size = minFaceSize
	}
	if dpi <= 0 {
		dpi = defaultFaceDPI
	}
	ttf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font parse error: %w", err)
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: size, DPI: dpi, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face error: %w", err)
	}
	return face, nil
}

// LoadFaceFile reads a font file from disk. An empty path returns DefaultFace.
func LoadFaceFile(path string, size float64) (font.Face, error) {
	if path == "" {
		return DefaultFace, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFace(data, size, defaultFaceDPI)
}
