package glyphcanvas

import (
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/glyphcanvas/utils"
	"github.com/pkg/errors"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Ops holds the location of the inputs and outputs of a generation run.
type Ops struct {
	FontsDir   string
	SourcesDir string
	Version    string
	IconList   string
	OutDir     string
	Weights    []string
	Workers    int
}

// Report summarizes a generation run.
type Report struct {
	Version string
	Weights []string
	Symbols int
	Written int
	Skipped int
	Failed  int
}

// job is one (symbol, weight) pair to be rendered.
type job struct {
	index  int
	symbol Symbol
	face   *FontFace
}

// result holds the relevant information about the rendering of a single job.
type result struct {
	job
	path  string
	thumb image.Image
	err   error
}

// Execute runs the symbol generation: it resolves the data version, loads the
// symbols and the fonts, then renders every symbol in every loaded weight.
// Missing precondition resources abort the run with an error; problems with
// single symbols or weights are logged and counted in the report.
func (p *Processor) Execute(op *Ops) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	versions, err := DetectVersions(op.SourcesDir)
	if err != nil {
		return nil, err
	}
	version, err := ResolveVersion(versions, op.Version)
	if err != nil {
		return nil, err
	}

	symbols, aligned, err := LoadSymbols(op.SourcesDir, version)
	if err != nil {
		return nil, err
	}
	if !aligned {
		logWarning(fmt.Sprintf("%s and %s of version %s differ in length, using the first %d symbols",
			NamesFile, CharsFile, version, len(symbols)))
	}

	if op.IconList != "" {
		if symbols, err = op.selectSymbols(symbols); err != nil {
			return nil, err
		}
	}

	faces, err := LoadFonts(op.FontsDir, op.Weights)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(op.OutDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "unable to create the output directory %q", op.OutDir)
	}
	if p.Preview || p.Sheet {
		if err := os.MkdirAll(previewDir(op.OutDir), 0755); err != nil {
			return nil, errors.Wrapf(err, "unable to create the preview directory")
		}
	}

	report := &Report{
		Version: version,
		Symbols: len(symbols),
	}
	for _, ff := range faces {
		report.Weights = append(report.Weights, ff.Weight)
	}

	log.Printf("%s %s",
		utils.DecorateText("⚡ GLYPHCANVAS", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("⇢ rendering %d symbols in %d weight(s) from version %s",
			len(symbols), len(faces), version), utils.DefaultMessage),
	)

	now := time.Now()
	thumbs := op.generate(p, faces, symbols, report)

	if p.Sheet {
		for i, ff := range faces {
			path := filepath.Join(previewDir(op.OutDir), "sheet"+weightSuffix(ff.Weight)+".png")
			if err := saveSheet(thumbs[i], path); err != nil {
				logError("unable to save the contact sheet", err)
				continue
			}
			log.Printf("The contact sheet has been saved as: %s",
				utils.DecorateText(filepath.Base(path), utils.SuccessMessage))
		}
	}

	log.Printf("\n%s symbols written, %s skipped, %s failed. Execution time: %s",
		utils.DecorateText(fmt.Sprint(report.Written), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprint(report.Skipped), utils.StatusMessage),
		utils.DecorateText(fmt.Sprint(report.Failed), utils.ErrorMessage),
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
	return report, nil
}

// selectSymbols restricts the symbols to the ones named in the icon list.
func (op *Ops) selectSymbols(symbols []Symbol) ([]Symbol, error) {
	wanted, err := LoadIconList(op.IconList)
	if err != nil {
		return nil, err
	}

	selected, missing, ok := FilterSymbols(symbols, wanted)
	for _, name := range missing {
		logWarning(fmt.Sprintf("icon %q not found, skipping", name))
	}
	if !ok {
		logWarning(fmt.Sprintf("no icon of %q matched, processing all %d icons", op.IconList, len(symbols)))
	}
	return selected, nil
}

// generate renders the symbols on a pool of workers and
// returns the preview thumbnails grouped by weight.
func (op *Ops) generate(p *Processor, faces []*FontFace, symbols []Symbol, report *Report) [][]image.Image {
	var wg sync.WaitGroup

	// Limit the concurrently running workers to maxWorkers.
	workers := op.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = utils.Min(runtime.NumCPU(), maxWorkers)
	}

	thumbs := make([][]image.Image, len(faces))
	if p.Sheet {
		for i := range thumbs {
			thumbs[i] = make([]image.Image, len(symbols))
		}
	}
	weightIndex := make(map[*FontFace]int, len(faces))
	for i, ff := range faces {
		weightIndex[ff] = i
	}

	if p.Spinner != nil {
		// Capture CTRL-C signal and restores back the cursor visibility.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-signalChan
			p.Spinner.RestoreCursor()
			os.Exit(1)
		}()
		p.Spinner.Start()
	}

	ch := make(chan result)
	done := make(chan interface{})
	defer close(done)

	jobs := produce(done, faces, symbols)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(p, ch, done, jobs)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	total := len(faces) * len(symbols)
	processed := 0

	// Consume the channel values.
	for res := range ch {
		processed++
		switch {
		case res.err == nil:
			report.Written++
			if p.Sheet && res.thumb != nil {
				thumbs[weightIndex[res.face]][res.index] = res.thumb
			}
		case isSkippable(res.err):
			report.Skipped++
			log.Printf("%s %s",
				utils.DecorateText(fmt.Sprintf("skipping %s (%s):", res.symbol.Name, res.face.Weight), utils.StatusMessage),
				utils.DecorateText(res.err.Error(), utils.DefaultMessage),
			)
		default:
			report.Failed++
			logError(fmt.Sprintf("failed rendering %s (%s)", res.symbol.Name, res.face.Weight), res.err)
		}

		if p.Spinner != nil {
			p.Spinner.SetMessage(fmt.Sprintf("%s %s",
				utils.DecorateText("⚡ GLYPHCANVAS", utils.StatusMessage),
				utils.DecorateText(fmt.Sprintf("⇢ %d/%d symbols", processed, total), utils.DefaultMessage),
			))
		}
	}

	if p.Spinner != nil {
		p.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
			utils.DecorateText("⚡ GLYPHCANVAS", utils.StatusMessage),
			utils.DecorateText("⇢", utils.DefaultMessage),
			utils.DecorateText(fmt.Sprintf("%d symbols saved into %s ✔", report.Written, op.OutDir), utils.SuccessMessage),
		)
		p.Spinner.Stop()
	}
	return thumbs
}

// produce starts a goroutine sending every (symbol, weight) pair on the jobs channel,
// weight by weight. It finishes in case the done channel is getting closed.
func produce(done <-chan interface{}, faces []*FontFace, symbols []Symbol) <-chan job {
	jobs := make(chan job)

	go func() {
		defer close(jobs)

		for _, ff := range faces {
			for i, s := range symbols {
				select {
				case <-done:
					return
				case jobs <- job{index: i, symbol: s, face: ff}:
				}
			}
		}
	}()
	return jobs
}

// consumer reads the jobs from the jobs channel and renders the symbols into the output directory.
func (op *Ops) consumer(
	p *Processor,
	res chan<- result,
	done <-chan interface{},
	jobs <-chan job,
) {
	for j := range jobs {
		r := op.process(p, j)

		select {
		case <-done:
			return
		case res <- r:
		}
	}
}

// process renders a single job and writes the resulting document.
func (op *Ops) process(p *Processor, j job) result {
	res := result{job: j}

	rs, err := p.Render(j.face, j.symbol)
	if err != nil {
		res.err = err
		return res
	}

	doc := rs.Document()
	res.path = filepath.Join(op.OutDir, rs.FileName())
	if err := os.WriteFile(res.path, doc, 0644); err != nil {
		res.err = errors.Wrapf(err, "unable to write %q", res.path)
		return res
	}

	if p.Preview || p.Sheet {
		img, err := p.Rasterize(doc, p.PreviewSize)
		if err != nil {
			res.err = errors.Wrap(err, "unable to render the preview")
			return res
		}
		if p.Preview {
			path := filepath.Join(previewDir(op.OutDir), baseName(rs.Name, rs.Weight)+".png")
			if err := savePreview(img, path); err != nil {
				res.err = err
				return res
			}
		}
		if p.Sheet {
			res.thumb = thumbnail(img)
		}
	}
	return res
}

func weightSuffix(weight string) string {
	if strings.EqualFold(weight, defaultWeight) {
		return ""
	}
	return "-" + sanitize(weight)
}

func logWarning(msg string) {
	log.Print(utils.DecorateText("⚠ "+msg, utils.WarningMessage))
}

func logError(msg string, err error) {
	log.Printf("%s %s",
		utils.DecorateText(msg+":", utils.ErrorMessage),
		utils.DecorateText(err.Error(), utils.DefaultMessage),
	)
}
