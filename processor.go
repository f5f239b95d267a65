package glyphcanvas

import (
	"github.com/esimov/glyphcanvas/utils"
	"github.com/pkg/errors"
)

// Default processor options.
const (
	DefaultCanvasSize  = 24
	DefaultPadding     = 2.0
	DefaultRenderSize  = 100.0
	DefaultPrecision   = 2
	DefaultPreviewSize = 128
)

// Processor options
type Processor struct {
	// CanvasSize is the width and height of the generated documents.
	CanvasSize int
	// Padding is the minimum distance between the symbol and the canvas edges.
	Padding float64
	// RenderSize is the size in pixels per em the glyph outlines are loaded at.
	RenderSize float64
	// Precision is the number of decimals kept in the path coordinates.
	Precision int

	Preview      bool
	PreviewSize  int
	PreviewColor string
	Sheet        bool

	Spinner *utils.Spinner
}

// NewProcessor returns a processor initialized with the default options.
func NewProcessor() *Processor {
	return &Processor{
		CanvasSize:   DefaultCanvasSize,
		Padding:      DefaultPadding,
		RenderSize:   DefaultRenderSize,
		Precision:    DefaultPrecision,
		PreviewSize:  DefaultPreviewSize,
		PreviewColor: "#000000",
	}
}

// Validate checks the processor options.
func (p *Processor) Validate() error {
	switch {
	case p.CanvasSize <= 0:
		return errors.Errorf("canvas size should be positive, got %d", p.CanvasSize)
	case p.Padding < 0:
		return errors.Errorf("padding should not be negative, got %v", p.Padding)
	case p.Padding*2 >= float64(p.CanvasSize):
		return errors.Errorf("padding %v leaves no room on a %d units canvas", p.Padding, p.CanvasSize)
	case p.RenderSize <= 0:
		return errors.Errorf("render size should be positive, got %v", p.RenderSize)
	case p.Precision < 0:
		return errors.Errorf("precision should not be negative, got %d", p.Precision)
	}

	if p.Preview || p.Sheet {
		if p.PreviewSize <= 0 {
			return errors.Errorf("preview size should be positive, got %d", p.PreviewSize)
		}
		if _, err := utils.HexToRGBA(p.PreviewColor); err != nil {
			return err
		}
	}
	return nil
}

// FitOptions returns the canvas configuration of the processor.
func (p *Processor) FitOptions() FitOptions {
	return FitOptions{
		CanvasSize: float64(p.CanvasSize),
		Padding:    p.Padding,
	}
}

// Render turns the glyph of a symbol into a canvas normalized symbol.
// It returns ErrGlyphNotFound or ErrEmptyGlyph (wrapped) when the
// font has nothing to render for the symbol.
func (p *Processor) Render(ff *FontFace, s Symbol) (*RenderedSymbol, error) {
	outline, err := ff.Glyph(s.Char, p.RenderSize)
	if err != nil {
		return nil, err
	}

	transform, ok := ComputeFit(&outline.Bounds, p.FitOptions())
	if !ok {
		return nil, errors.Wrapf(ErrEmptyGlyph, "U+%04X", s.Char)
	}

	return &RenderedSymbol{
		Name:       s.Name,
		Weight:     ff.Weight,
		CanvasSize: p.CanvasSize,
		Transform:  *transform,
		PathData:   outline.PathData(p.Precision),
	}, nil
}

// isSkippable reports whether the error only means there is nothing to render.
func isSkippable(err error) bool {
	return errors.Is(err, ErrGlyphNotFound) || errors.Is(err, ErrEmptyGlyph)
}
