package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// HexToRGBA converts a color expressed in hexadecimal format (#rgb or #rrggbb) to RGBA.
func HexToRGBA(hex string) (color.NRGBA, error) {
	var (
		col = color.NRGBA{A: 0xff}
		err error
	)
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &col.R, &col.G, &col.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &col.R, &col.G, &col.B)
		// Double the hex digits: 0xf becomes 0xff.
		col.R *= 17
		col.G *= 17
		col.B *= 17
	default:
		err = fmt.Errorf("invalid color length: %q", hex)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return col, nil
}

// RGBAToHex returns the #rrggbb representation of a color.
func RGBAToHex(col color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B)
}
