package utils

import (
	"net/http"
	"strings"

	"golang.org/x/exp/slices"
)

// Contains returns true if a value is available in the collection.
func Contains[T comparable](slice []T, value T) bool {
	return slices.Contains(slice, value)
}

// DetectContentType detects the file type by reading MIME type information of the content.
// Only the first 512 bytes are used to sniff the content type.
func DetectContentType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(data)
}

// IsFontContent reports whether the sniffed content could be a font file.
// TrueType fonts using the 'true' tag are not recognized by the sniffer,
// so a generic binary stream is accepted as well.
func IsFontContent(data []byte) bool {
	ctype := DetectContentType(data)
	return strings.HasPrefix(ctype, "font/") || ctype == "application/octet-stream"
}
