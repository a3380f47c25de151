package render

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fontFileName is the bold face the wordmark prefers. It is resolved
// from the working directory, where the asset pipeline stages fonts
// next to the generator.
const fontFileName = "Arial Bold.ttf"

// resolveFace loads the named TrueType file at the given point size.
// Any read or parse failure falls back to the built-in fixed face so
// rendering always succeeds.
func resolveFace(name string, points float64) font.Face {
	data, err := os.ReadFile(name)
	if err != nil {
		return basicfont.Face7x13
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: points, DPI: 72})
}
