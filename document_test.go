package glyphcanvas

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type svgDoc struct {
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	ViewBox string `xml:"viewBox,attr"`
	Title   string `xml:"title"`
	Paths   []struct {
		D         string `xml:"d,attr"`
		Transform string `xml:"transform,attr"`
		Fill      string `xml:"fill,attr"`
	} `xml:"path"`
}

func TestDocument_Emit(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	tr := &AffineTransform{Scale: 0.2, TranslateX: 2, TranslateY: 7}
	err := EmitDocument(&buf, 24, "moon.stars", tr, "M0 0L100 0L100 50Z")
	require.NoError(t, err)

	var doc svgDoc
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal("24", doc.Width)
	assert.Equal("24", doc.Height)
	assert.Equal("0 0 24 24", doc.ViewBox)
	assert.Equal("moon.stars", doc.Title)
	require.Len(t, doc.Paths, 1)
	assert.Equal("M0 0L100 0L100 50Z", doc.Paths[0].D)
	assert.Equal("matrix(0.2, 0, 0, 0.2, 2, 7)", doc.Paths[0].Transform)
	assert.Equal("currentColor", doc.Paths[0].Fill)
}

func TestDocument_TitleIsEscaped(t *testing.T) {
	rs := &RenderedSymbol{
		Name:       "a<b>&c",
		Weight:     "bold",
		CanvasSize: 16,
		Transform:  AffineTransform{Scale: 1},
		PathData:   "M0 0L1 1Z",
	}
	out := rs.Document()

	var doc svgDoc
	require.NoError(t, xml.Unmarshal(out, &doc))
	assert.Equal(t, "a<b>&c", doc.Title)
	assert.False(t, strings.Contains(string(out), "<b>"))
	assert.Equal(t, "a_b__c-bold.svg", rs.FileName())
}
