package render

import (
	"image/color"
	"strconv"
	"strings"
)

// White and the dark text tone used when the background is light.
var (
	white    = color.RGBA{255, 255, 255, 255}
	darkText = color.RGBA{33, 33, 33, 255}
)

func parseHex(input string) (color.RGBA, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, false
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (case-insensitive, leading
// "#" optional). Malformed input yields fallback, never an error.
func ParseHex(input string, fallback color.RGBA) color.RGBA {
	c, ok := parseHex(input)
	if !ok {
		return fallback
	}
	return c
}

// IsDark classifies a hex color by luminance (0.299R + 0.587G + 0.114B,
// alpha ignored). Values below 128 are dark. Blank or malformed input
// counts as light.
func IsDark(input string) bool {
	c, ok := parseHex(input)
	if !ok {
		return false
	}
	luminance := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return luminance < 128
}

// TextColor picks a contrasting text color for the given background:
// white on dark backgrounds, near-black on light ones.
func TextColor(background string) color.RGBA {
	if IsDark(background) {
		return white
	}
	return darkText
}
