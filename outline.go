package glyphcanvas

import (
	"os"
	"strconv"
	"strings"

	"github.com/esimov/glyphcanvas/utils"
	"github.com/pkg/errors"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrGlyphNotFound is returned when the font has no glyph for a character.
	ErrGlyphNotFound = errors.New("glyph not found")
	// ErrEmptyGlyph is returned when a glyph has no renderable geometry.
	ErrEmptyGlyph = errors.New("glyph has no outline")
)

// point is a glyph-space coordinate pair.
type point struct {
	x, y float64
}

// FontFace is a parsed font file supplying the glyphs of one weight.
// It is safe for concurrent use.
type FontFace struct {
	Weight string
	Path   string

	font *sfnt.Font
}

// LoadFontFile reads and parses the font file found at path.
func LoadFontFile(weight, path string) (*FontFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read the font file %q", path)
	}
	return ParseFont(weight, path, data)
}

// ParseFont parses the raw content of an OpenType/TrueType font or font collection.
// In case of a collection the first font is used.
func ParseFont(weight, path string, data []byte) (*FontFace, error) {
	if !utils.IsFontContent(data) {
		return nil, errors.Errorf("%q is not a font file (%s)", path, utils.DetectContentType(data))
	}

	var (
		f   *sfnt.Font
		err error
	)
	if utils.DetectContentType(data) == "font/collection" {
		var c *sfnt.Collection
		if c, err = sfnt.ParseCollection(data); err == nil {
			f, err = c.Font(0)
		}
	} else {
		f, err = opentype.Parse(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse the font file %q", path)
	}

	return &FontFace{
		Weight: weight,
		Path:   path,
		font:   f,
	}, nil
}

// Name returns the full name recorded in the font, falling back to the file name.
func (ff *FontFace) Name() string {
	if name, err := ff.font.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return ff.Path
}

// Outline is the vector outline of a glyph rendered at a given size,
// in absolute coordinates with the y axis pointing down.
type Outline struct {
	Bounds   BoundingBox
	segments sfnt.Segments
}

// Glyph loads the outline of the character r rendered at size pixels per em.
// It returns ErrGlyphNotFound if the font does not map r to a glyph and
// ErrEmptyGlyph if the glyph has no geometry (e.g. the space character).
func (ff *FontFace) Glyph(r rune, size float64) (*Outline, error) {
	var buf sfnt.Buffer

	idx, err := ff.font.GlyphIndex(&buf, r)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to look up U+%04X", r)
	}
	if idx == 0 {
		return nil, errors.Wrapf(ErrGlyphNotFound, "U+%04X", r)
	}

	segments, err := ff.font.LoadGlyph(&buf, idx, fixed.Int26_6(size*64), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load the glyph of U+%04X", r)
	}
	// The buffer owns the returned slice, so it must be copied before reuse.
	segments = append(sfnt.Segments(nil), segments...)

	bbox := segmentBounds(segments)
	if bbox == nil {
		return nil, errors.Wrapf(ErrEmptyGlyph, "U+%04X", r)
	}

	return &Outline{
		Bounds:   *bbox,
		segments: segments,
	}, nil
}

// segmentBounds computes the tight bounding box of the glyph segments.
func segmentBounds(segments sfnt.Segments) *BoundingBox {
	var (
		b   = newBoundsBuilder()
		cur point
	)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
			cur = toPoint(seg.Args[0])
			b.addPoint(cur.x, cur.y)
		case sfnt.SegmentOpQuadTo:
			p1, p2 := toPoint(seg.Args[0]), toPoint(seg.Args[1])
			b.addQuad(cur, p1, p2)
			cur = p2
		case sfnt.SegmentOpCubeTo:
			p1, p2, p3 := toPoint(seg.Args[0]), toPoint(seg.Args[1]), toPoint(seg.Args[2])
			b.addCubic(cur, p1, p2, p3)
			cur = p3
		}
	}
	return b.bounds()
}

// PathData serializes the outline into SVG path commands, with coordinates
// rounded to the given number of decimal places. Each contour is closed.
func (o *Outline) PathData(precision int) string {
	var sb strings.Builder

	coords := func(pts ...fixed.Point26_6) {
		for i, p := range pts {
			if i > 0 {
				sb.WriteByte(' ')
			}
			pt := toPoint(p)
			sb.WriteString(formatCoord(pt.x, precision))
			sb.WriteByte(' ')
			sb.WriteString(formatCoord(pt.y, precision))
		}
	}

	open := false
	for _, seg := range o.segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sb.WriteByte('Z')
			}
			sb.WriteByte('M')
			coords(seg.Args[0])
			open = true
		case sfnt.SegmentOpLineTo:
			sb.WriteByte('L')
			coords(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			sb.WriteByte('Q')
			coords(seg.Args[0], seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			sb.WriteByte('C')
			coords(seg.Args[0], seg.Args[1], seg.Args[2])
		}
	}
	if open {
		sb.WriteByte('Z')
	}
	return sb.String()
}

// segmentArgs returns the number of points used by a segment operation.
func segmentArgs(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	}
	return 1
}

func toPoint(p fixed.Point26_6) point {
	return point{
		x: float64(p.X) / 64,
		y: float64(p.Y) / 64,
	}
}

// formatCoord rounds v to precision decimals and trims the trailing zeros.
func formatCoord(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
