package glyphcanvas

import (
	"strings"
)

// defaultWeight is the weight which contributes no suffix to the file names.
const defaultWeight = "regular"

// docExt is the extension of the generated documents.
const docExt = ".svg"

// FileName derives the output file name of an icon rendered in the given weight.
// Both parts are lower-cased and every rune other than an ASCII letter or digit
// is replaced by an underscore, e.g. "Moon.Stars" becomes "moon_stars.svg".
func FileName(name, weight string) string {
	return baseName(name, weight) + docExt
}

// baseName is the file name without extension.
func baseName(name, weight string) string {
	if weight == "" || strings.EqualFold(weight, defaultWeight) {
		return sanitize(name)
	}
	return sanitize(name) + "-" + sanitize(weight)
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '_'
	}, s)
}
