package glyphcanvas

import (
	"fmt"
	"strconv"
)

// BoundingBox is the tightest axis-aligned rectangle enclosing a glyph outline,
// expressed in glyph-space coordinates.
type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// IsEmpty reports whether the box has no renderable area.
func (b BoundingBox) IsEmpty() bool {
	return b.Width() == 0 || b.Height() == 0
}

// FitOptions holds the target canvas configuration.
// Padding*2 is expected to be smaller than CanvasSize.
type FitOptions struct {
	CanvasSize float64
	Padding    float64
}

// AffineTransform is the uniform scale plus translation
// described by the matrix [Scale 0 0 Scale TranslateX TranslateY].
type AffineTransform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Apply maps a glyph-space point into canvas space.
func (t AffineTransform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.TranslateX, y*t.Scale + t.TranslateY
}

// Matrix returns the transform as an SVG matrix() attribute value.
func (t AffineTransform) Matrix() string {
	s := formatFloat(t.Scale)
	return fmt.Sprintf("matrix(%s, 0, 0, %s, %s, %s)",
		s, s, formatFloat(t.TranslateX), formatFloat(t.TranslateY),
	)
}

// ComputeFit calculates the transform which places the glyph bounding box in the
// middle of the canvas, scaled without distortion so that the limiting dimension
// fills the padded area exactly. It returns false if the box is nil or has
// zero width or height, in which case there is nothing to render.
func ComputeFit(bbox *BoundingBox, opts FitOptions) (*AffineTransform, bool) {
	if bbox == nil || bbox.IsEmpty() {
		return nil, false
	}

	var (
		symbolWidth     = bbox.Width()
		symbolHeight    = bbox.Height()
		availableWidth  = opts.CanvasSize - opts.Padding*2
		availableHeight = opts.CanvasSize - opts.Padding*2
		scale           float64
	)

	widthRatio := symbolWidth / availableWidth
	heightRatio := symbolHeight / availableHeight

	if widthRatio > heightRatio {
		scale = availableWidth / symbolWidth
	} else {
		scale = availableHeight / symbolHeight
	}

	scaledWidth := symbolWidth * scale
	scaledHeight := symbolHeight * scale

	// The glyph origin is not guaranteed to be at zero, so the scaled
	// minimum coordinates are subtracted from the centering offset.
	return &AffineTransform{
		Scale:      scale,
		TranslateX: (opts.CanvasSize-scaledWidth)/2 - bbox.MinX*scale,
		TranslateY: (opts.CanvasSize-scaledHeight)/2 - bbox.MinY*scale,
	}, true
}

// formatFloat prints the shortest representation which round-trips to f.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
