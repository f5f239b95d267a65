package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/esimov/glyphcanvas"
	"github.com/esimov/glyphcanvas/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┬  ┬ ┬┌─┐┬ ┬┌─┐┌─┐┌┐┌┬  ┬┌─┐┌─┐
│ ┬│  └┬┘├─┘├─┤│  ├─┤│││└┐┌┘├─┤└─┐
└─┘┴─┘ ┴ ┴  ┴ ┴└─┘┴ ┴┘└┘ └┘ ┴ ┴└─┘

Icon font to SVG symbol converter.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	canvasSize   = flag.Int("size", glyphcanvas.DefaultCanvasSize, "Canvas size")
	padding      = flag.Float64("padding", glyphcanvas.DefaultPadding, "Padding around the symbol")
	weights      = flag.String("weight", "regular", "Font weight(s), comma separated, or \"all\"")
	destination  = flag.String("out", "symbols", "Output directory")
	fontsDir     = flag.String("fonts", "fonts", "Font source directory")
	dataVersion  = flag.String("symbols-version", "", "Symbol data version (defaults to the latest)")
	sourcesDir   = flag.String("sources", "sources", "Symbol data source directory")
	iconList     = flag.String("icons", "", "File listing the icon names to convert")
	renderSize   = flag.Float64("render-size", glyphcanvas.DefaultRenderSize, "Glyph rendering size in pixels per em")
	precision    = flag.Int("precision", glyphcanvas.DefaultPrecision, "Decimal places of the path coordinates")
	workers      = flag.Int("conc", runtime.NumCPU(), "Number of symbols to process concurrently")
	preview      = flag.Bool("preview", false, "Save a PNG preview of every symbol")
	previewSize  = flag.Int("preview-size", glyphcanvas.DefaultPreviewSize, "Preview size in pixels")
	previewColor = flag.String("preview-color", "#000000", "Preview fill color")
	sheet        = flag.Bool("sheet", false, "Save a contact sheet for every weight")
	version      = flag.Bool("version", false, "Print the version and exit")
)

func init() {
	flag.BoolVar(version, "v", false, "Print the version and exit (shorthand)")
}

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("glyphcanvas version: %s\n", Version)
		return
	}

	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	utils.EnableColors(isTerminal)

	ws, err := glyphcanvas.ExpandWeights(*weights)
	if err != nil {
		flag.Usage()
		log.Fatalf(utils.DecorateText("\n%v", utils.ErrorMessage), err)
	}

	proc := &glyphcanvas.Processor{
		CanvasSize:   *canvasSize,
		Padding:      *padding,
		RenderSize:   *renderSize,
		Precision:    *precision,
		Preview:      *preview,
		PreviewSize:  *previewSize,
		PreviewColor: *previewColor,
		Sheet:        *sheet,
	}
	if isTerminal {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ GLYPHCANVAS", utils.StatusMessage),
			utils.DecorateText("⇢ converting the symbols...", utils.DefaultMessage))
		proc.Spinner = utils.NewSpinner(os.Stderr, spinnerText, time.Millisecond*100, true)
	}

	op := &glyphcanvas.Ops{
		FontsDir:   *fontsDir,
		SourcesDir: *sourcesDir,
		Version:    *dataVersion,
		IconList:   *iconList,
		OutDir:     *destination,
		Weights:    ws,
		Workers:    *workers,
	}

	if _, err := proc.Execute(op); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("\nError converting the symbols:", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}
}
