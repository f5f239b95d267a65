package glyphcanvas

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/esimov/glyphcanvas/utils"
	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// sheetCell is the size of one symbol on the contact sheet.
const sheetCell = 64

// previewDir is where the previews and the contact sheets are saved.
func previewDir(outDir string) string {
	return filepath.Join(outDir, "preview")
}

// Rasterize renders an SVG document into a size x size image, painting
// the inherited fill with the preview color of the processor.
func (p *Processor) Rasterize(doc []byte, size int) (*image.NRGBA, error) {
	col, err := utils.HexToRGBA(p.PreviewColor)
	if err != nil {
		return nil, err
	}
	doc = bytes.ReplaceAll(doc,
		[]byte(`fill="`+fillColor+`"`),
		[]byte(`fill="`+utils.RGBAToHex(col)+`"`),
	)

	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc))
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse the document")
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return imaging.Clone(img), nil
}

// savePreview encodes the preview image into a PNG file.
func savePreview(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "unable to save the preview %q", path)
	}
	return nil
}

// thumbnail downsizes a preview to the contact sheet cell size.
func thumbnail(img image.Image) image.Image {
	if img.Bounds().Dx() == sheetCell && img.Bounds().Dy() == sheetCell {
		return img
	}
	return imaging.Resize(img, sheetCell, sheetCell, imaging.Lanczos)
}

// buildSheet tiles the thumbnails into a square-ish grid on a white background.
// Missing thumbnails leave their cell empty, so every symbol keeps its position.
func buildSheet(thumbs []image.Image, cell int) *image.NRGBA {
	n := len(thumbs)
	if n == 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	sheet := imaging.New(cols*cell, rows*cell, color.White)
	for i, thumb := range thumbs {
		if thumb == nil {
			continue
		}
		pt := image.Pt((i%cols)*cell, (i/cols)*cell)
		sheet = imaging.Overlay(sheet, thumb, pt, 1.0)
	}
	return sheet
}

// saveSheet writes the contact sheet of one weight.
func saveSheet(thumbs []image.Image, path string) error {
	sheet := buildSheet(thumbs, sheetCell)
	if sheet == nil {
		return errors.New("no symbol rendered")
	}
	return savePreview(sheet, path)
}
