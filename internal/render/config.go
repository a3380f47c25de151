package render

import "image/color"

// Logo palette.
var (
	Navy  = color.RGBA{R: 10, G: 20, B: 64, A: 255}    // background
	Cream = color.RGBA{R: 250, G: 242, B: 217, A: 255} // wordmark
	Green = color.RGBA{R: 26, G: 204, B: 51, A: 255}   // checkmark
)

// Geometry is expressed as fractions of the target height (or canvas
// width where noted) so the asset variants stay proportional.
const (
	// Canvas is 1.5x as wide as it is tall.
	aspectRatio = 1.5

	// Wordmark.
	label          = "ClearFine"
	fontScale      = 0.4
	labelWidthFrac = 0.8 // approximate wordmark width as a fraction of canvas width

	// Checkmark.
	checkXFrac     = 0.55 // of canvas width
	checkYFrac     = 0.5
	checkSizeScale = 0.3
	strokeScale    = 0.06
)
