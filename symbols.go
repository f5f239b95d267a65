package glyphcanvas

import (
	"bufio"
	"bytes"
	"strings"
	"unicode/utf16"
)

// charWidth is the width of one codepoint token in UTF-16 code units.
const charWidth = 2

// Symbol pairs an icon name with the character encoding it in the font.
type Symbol struct {
	Name string
	Char rune
}

// ParseNames splits a newline-delimited name list. Blank lines are dropped.
func ParseNames(data []byte) []string {
	var names []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ParseChars splits the codepoint list into fixed-width tokens of two UTF-16
// code units and returns the codepoint each token starts with. A token is
// either one supplementary-plane character encoded as a surrogate pair or
// two BMP characters. Line breaks are not part of the token stream.
func ParseChars(data []byte) []rune {
	var units []uint16
	for _, r := range string(data) {
		if r == '\n' || r == '\r' {
			continue
		}
		units = append(units, utf16.Encode([]rune{r})...)
	}

	chars := make([]rune, 0, len(units)/charWidth)
	for i := 0; i+charWidth <= len(units); i += charWidth {
		token := utf16.Decode(units[i : i+charWidth])
		chars = append(chars, token[0])
	}
	return chars
}

// PairSymbols joins the index-aligned name and codepoint lists into one list
// of records, so they are never passed around separately. When the lists
// differ in length only the common prefix is paired; the returned flag
// reports the mismatch.
func PairSymbols(names []string, chars []rune) ([]Symbol, bool) {
	n := len(names)
	if len(chars) < n {
		n = len(chars)
	}

	symbols := make([]Symbol, n)
	for i := 0; i < n; i++ {
		symbols[i] = Symbol{Name: names[i], Char: chars[i]}
	}
	return symbols, len(names) == len(chars)
}
