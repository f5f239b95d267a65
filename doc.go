/*
Package glyphcanvas converts the glyphs of an icon font into standalone SVG documents,
one per icon name and font weight. Every glyph outline is scaled without distortion
and centered on a square canvas, keeping a uniform padding around the symbol.

The package provides a command line interface, supporting various flags for the canvas
geometry, the font weights and the data sources. To check the supported commands type:

	$ glyphcanvas --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/glyphcanvas"
	)

	func main() {
		p := glyphcanvas.NewProcessor()
		p.CanvasSize = 32

		report, err := p.Execute(&glyphcanvas.Ops{
			FontsDir:   "fonts",
			SourcesDir: "sources",
			OutDir:     "symbols",
			Weights:    []string{"regular", "bold"},
		})
		if err != nil {
			fmt.Printf("Error generating the symbols: %s", err.Error())
			return
		}
		fmt.Printf("%d symbols written", report.Written)
	}

The core of the conversion is ComputeFit, which can be used on its own:

	t, ok := glyphcanvas.ComputeFit(&glyphcanvas.BoundingBox{MaxX: 100, MaxY: 50},
		glyphcanvas.FitOptions{CanvasSize: 24, Padding: 2})
	// t.Scale == 0.2, t.TranslateX == 2, t.TranslateY == 7
*/
package glyphcanvas
