package glyphcanvas

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Names of the data files expected in every version directory.
const (
	NamesFile = "symbol_names.txt"
	CharsFile = "symbol_chars.txt"
)

var (
	// ErrNoVersions is returned when the sources directory holds no version directory.
	ErrNoVersions = errors.New("no symbol data versions found")
	// ErrMissingData is returned when a version directory lacks a data file.
	ErrMissingData = errors.New("missing symbol data file")
)

// DetectVersions lists the version directories found under the sources
// directory, ordered from the oldest to the latest.
func DetectVersions(sourcesDir string) ([]string, error) {
	entries, err := os.ReadDir(sourcesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoVersions, "%q does not exist, expected %s", sourcesDir, layoutHint(sourcesDir))
		}
		return nil, errors.Wrapf(err, "unable to read the sources directory %q", sourcesDir)
	}

	var versions []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			versions = append(versions, e.Name())
		}
	}
	if len(versions) == 0 {
		return nil, errors.Wrapf(ErrNoVersions, "expected %s", layoutHint(sourcesDir))
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) < 0
	})
	return versions, nil
}

// ResolveVersion returns the requested version if present in the list,
// or the latest one if no version was requested.
func ResolveVersion(versions []string, requested string) (string, error) {
	if len(versions) == 0 {
		return "", ErrNoVersions
	}
	if requested == "" {
		return versions[len(versions)-1], nil
	}
	for _, v := range versions {
		if v == requested {
			return v, nil
		}
	}
	return "", errors.Errorf("version %q not found, available versions: %s",
		requested, strings.Join(versions, ", "),
	)
}

// LoadSymbols reads the name and codepoint lists of a version and pairs them.
// The returned flag is false if the two lists differ in length.
func LoadSymbols(sourcesDir, version string) ([]Symbol, bool, error) {
	dir := filepath.Join(sourcesDir, version)

	names, err := readDataFile(dir, NamesFile)
	if err != nil {
		return nil, false, err
	}
	chars, err := readDataFile(dir, CharsFile)
	if err != nil {
		return nil, false, err
	}

	symbols, ok := PairSymbols(ParseNames(names), ParseChars(chars))
	return symbols, ok, nil
}

// LoadIconList reads a newline-delimited list of icon names.
func LoadIconList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read the icon list %q", path)
	}
	return ParseNames(data), nil
}

func readDataFile(dir, name string) ([]byte, error) {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrMissingData, "%q not found, expected %s",
				path, layoutHint(filepath.Dir(dir)),
			)
		}
		return nil, errors.Wrapf(err, "unable to read %q", path)
	}
	return data, nil
}

func layoutHint(sourcesDir string) string {
	return filepath.Join(sourcesDir, "<version>", "{"+NamesFile+","+CharsFile+"}")
}

// compareVersions orders dotted version strings numerically component by
// component ("4.10" comes after "4.9"). Non-numeric components compare as strings.
func compareVersions(a, b string) int {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")

	for i := 0; i < len(pa) && i < len(pb); i++ {
		na, errA := strconv.Atoi(pa[i])
		nb, errB := strconv.Atoi(pb[i])

		switch {
		case errA == nil && errB == nil:
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
		case pa[i] != pb[i]:
			return strings.Compare(pa[i], pb[i])
		}
	}
	return len(pa) - len(pb)
}
