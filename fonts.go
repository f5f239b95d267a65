package glyphcanvas

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/esimov/glyphcanvas/utils"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// AllWeights is the sentinel expanding to every supported weight.
const AllWeights = "all"

// Weights enumerates the supported font weights, from the lightest to the heaviest.
var Weights = []string{
	"ultralight",
	"thin",
	"light",
	"regular",
	"medium",
	"semibold",
	"bold",
	"heavy",
	"black",
}

// fontExtensions are the font file types which can be parsed.
var fontExtensions = []string{".otf", ".ttf", ".ttc", ".otc"}

// ErrNoFonts is returned when none of the requested weights could be loaded.
var ErrNoFonts = errors.New("no fonts loaded")

// ExpandWeights parses a comma separated weight list. The "all" sentinel
// expands to every supported weight. Duplicates are removed.
func ExpandWeights(list string) ([]string, error) {
	var weights []string

	for _, w := range strings.Split(list, ",") {
		w = strings.ToLower(strings.TrimSpace(w))
		switch {
		case w == "":
			continue
		case w == AllWeights:
			return append([]string(nil), Weights...), nil
		case !slices.Contains(Weights, w):
			return nil, errors.Errorf("unsupported weight %q, expected one of: %s, %s",
				w, strings.Join(Weights, ", "), AllWeights,
			)
		case !slices.Contains(weights, w):
			weights = append(weights, w)
		}
	}
	if len(weights) == 0 {
		return []string{defaultWeight}, nil
	}
	return weights, nil
}

// FindFontFile looks up the font file of a weight inside the fonts directory.
// Font files are expected to be named "<family>-<Weight>.otf", e.g.
// "SF-Pro-Text-Semibold.otf"; the weight is matched case-insensitively.
func FindFontFile(fontsDir, weight string) (string, error) {
	if weight == "" {
		return "", errors.New("empty font weight")
	}
	entries, err := os.ReadDir(fontsDir)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read the fonts directory %q", fontsDir)
	}

	suffix := "-" + strings.ToLower(weight)
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !utils.Contains(fontExtensions, ext) {
			continue
		}
		if strings.HasSuffix(strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name))), suffix) {
			return filepath.Join(fontsDir, name), nil
		}
	}
	return "", errors.Errorf("no font file for weight %q in %q, expected a file named <family>-%s.otf",
		weight, fontsDir, strings.ToUpper(weight[:1])+weight[1:],
	)
}

// LoadFonts loads the font of every weight concurrently. Weights whose font
// cannot be found or parsed are logged and dropped. The returned faces keep
// the order of the requested weights.
func LoadFonts(fontsDir string, weights []string) ([]*FontFace, error) {
	var (
		wg    sync.WaitGroup
		faces = make([]*FontFace, len(weights))
	)

	wg.Add(len(weights))
	for i, weight := range weights {
		go func(i int, weight string) {
			defer wg.Done()

			path, err := FindFontFile(fontsDir, weight)
			if err == nil {
				faces[i], err = LoadFontFile(weight, path)
			}
			if err != nil {
				log.Printf("%s %s",
					utils.DecorateText("⚠ skipping weight "+weight+":", utils.WarningMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
		}(i, weight)
	}
	wg.Wait()

	loaded := faces[:0]
	for _, ff := range faces {
		if ff != nil {
			loaded = append(loaded, ff)
		}
	}
	if len(loaded) == 0 {
		return nil, errors.Wrapf(ErrNoFonts, "none of the weights [%s] found in %q",
			strings.Join(weights, ", "), fontsDir,
		)
	}
	return loaded, nil
}
