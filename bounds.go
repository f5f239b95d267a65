package glyphcanvas

import "math"

// boundsBuilder accumulates the tight bounding box of a path.
// Curves contribute their extrema, not their control points.
type boundsBuilder struct {
	minX, minY float64
	maxX, maxY float64
	empty      bool
}

func newBoundsBuilder() *boundsBuilder {
	return &boundsBuilder{
		minX:  math.Inf(1),
		minY:  math.Inf(1),
		maxX:  math.Inf(-1),
		maxY:  math.Inf(-1),
		empty: true,
	}
}

func (b *boundsBuilder) addPoint(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
	b.empty = false
}

// addQuad extends the bounds with the quadratic Bézier curve p0-p1-p2.
func (b *boundsBuilder) addQuad(p0, p1, p2 point) {
	b.addPoint(p2.x, p2.y)

	for _, t := range []float64{
		quadExtremum(p0.x, p1.x, p2.x),
		quadExtremum(p0.y, p1.y, p2.y),
	} {
		if t > 0 && t < 1 {
			b.addPoint(quadAt(p0.x, p1.x, p2.x, t), quadAt(p0.y, p1.y, p2.y, t))
		}
	}
}

// addCubic extends the bounds with the cubic Bézier curve p0-p1-p2-p3.
func (b *boundsBuilder) addCubic(p0, p1, p2, p3 point) {
	b.addPoint(p3.x, p3.y)

	var roots []float64
	roots = append(roots, cubicExtrema(p0.x, p1.x, p2.x, p3.x)...)
	roots = append(roots, cubicExtrema(p0.y, p1.y, p2.y, p3.y)...)

	for _, t := range roots {
		if t > 0 && t < 1 {
			b.addPoint(cubicAt(p0.x, p1.x, p2.x, p3.x, t), cubicAt(p0.y, p1.y, p2.y, p3.y, t))
		}
	}
}

// bounds returns the accumulated box, or nil if no point was added.
func (b *boundsBuilder) bounds() *BoundingBox {
	if b.empty {
		return nil
	}
	return &BoundingBox{MinX: b.minX, MinY: b.minY, MaxX: b.maxX, MaxY: b.maxY}
}

// quadExtremum returns the parameter where the derivative of a
// quadratic Bézier component vanishes, or -1 if there is none.
func quadExtremum(a, b, c float64) float64 {
	d := a - 2*b + c
	if d == 0 {
		return -1
	}
	return (a - b) / d
}

func quadAt(a, b, c, t float64) float64 {
	mt := 1 - t
	return mt*mt*a + 2*mt*t*b + t*t*c
}

// cubicExtrema solves B'(t) = 0 for one component of a cubic Bézier curve.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func cubicAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}
