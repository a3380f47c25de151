// Package render draws the ClearFine logo onto an in-memory RGBA canvas.
package render

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// Logo renders the logo at the given height in pixels: navy background,
// cream "ClearFine" wordmark, green checkmark. The caller owns the
// returned canvas.
func Logo(size int) *image.RGBA {
	width := int(float64(size) * aspectRatio)
	height := size

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: Navy}, image.Point{}, draw.Src)

	dc := gg.NewContextForRGBA(img)

	// Wordmark. Horizontal placement uses the historical approximate
	// width (0.8x canvas) rather than measured glyph extents; the
	// shipped assets depend on that placement.
	fontSize := int(float64(size) * fontScale)
	face := resolveFace(fontFileName, float64(fontSize))
	textX := (float64(width) - float64(width)*labelWidthFrac) / 2
	baseline := float64(height-fontSize)/2 + float64(face.Metrics().Ascent.Ceil())
	dc.SetFontFace(face)
	dc.SetColor(Cream)
	dc.DrawString(label, textX, baseline)

	// Checkmark: an open two-segment polyline, drawn over the wordmark.
	pts := checkmarkPoints(size)
	dc.SetColor(Green)
	dc.SetLineWidth(float64(int(float64(size) * strokeScale)))
	dc.MoveTo(pts[0].X, pts[0].Y)
	dc.LineTo(pts[1].X, pts[1].Y)
	dc.LineTo(pts[2].X, pts[2].Y)
	dc.Stroke()

	return img
}

// checkmarkPoints returns the V-shape endpoints for a canvas of the
// given height, in drawing order.
func checkmarkPoints(size int) [3]gg.Point {
	width := int(float64(size) * aspectRatio)
	checkX := float64(int(float64(width) * checkXFrac))
	checkY := float64(int(float64(size) * checkYFrac))
	checkSize := float64(int(float64(size) * checkSizeScale))
	return [3]gg.Point{
		{X: checkX - checkSize/2, Y: checkY},
		{X: checkX - checkSize/6, Y: checkY + checkSize/2},
		{X: checkX + checkSize/2, Y: checkY - checkSize/2},
	}
}
