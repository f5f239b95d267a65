package glyphcanvas

import (
	"bytes"
	"io"

	svg "github.com/ajstarks/svgo"
)

// fillColor lets the consumer of the document control the rendering color.
const fillColor = "currentColor"

// RenderedSymbol is the output unit of the generator: a single
// icon name rendered in a single font weight.
type RenderedSymbol struct {
	Name       string
	Weight     string
	CanvasSize int
	Transform  AffineTransform
	PathData   string
}

// Document serializes the symbol into an SVG document.
func (rs *RenderedSymbol) Document() []byte {
	var buf bytes.Buffer
	writeDocument(&buf, rs.CanvasSize, rs.Name, &rs.Transform, rs.PathData)
	return buf.Bytes()
}

// FileName returns the name of the file the symbol is saved into.
func (rs *RenderedSymbol) FileName() string {
	return FileName(rs.Name, rs.Weight)
}

// EmitDocument writes a square SVG document of canvasSize units holding a
// title and one path transformed by t.
func EmitDocument(w io.Writer, canvasSize int, title string, t *AffineTransform, pathData string) error {
	var buf bytes.Buffer
	writeDocument(&buf, canvasSize, title, t, pathData)

	_, err := buf.WriteTo(w)
	return err
}

func writeDocument(buf *bytes.Buffer, canvasSize int, title string, t *AffineTransform, pathData string) {
	canvas := svg.New(buf)
	canvas.Startview(canvasSize, canvasSize, 0, 0, canvasSize, canvasSize)
	canvas.Title(title)
	canvas.Path(pathData,
		`transform="`+t.Matrix()+`"`,
		`fill="`+fillColor+`"`,
	)
	canvas.End()
}
