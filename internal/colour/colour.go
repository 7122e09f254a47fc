// Package colour implements the colour-matching and seasonal-palette
// compatibility engine: hex parsing, perceptual distance, nearest-name
// classification and palette scoring. Everything in this package is a pure
// function over static tables and is safe for concurrent use.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidColourFormat is returned by ParseHex for input that is not
// exactly six hexadecimal digits (with one optional leading '#').
var ErrInvalidColourFormat = errors.New("invalid colour format")

// RGB represents a colour in 8-bit RGB format. No alpha channel: garment
// colours are always opaque.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
// ParseHex(rgb.Hex()) round-trips for every RGB value.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToStdColor converts the RGB value to a standard library color with full
// opacity, for callers that interoperate with image/color.
func (rgb RGB) ToStdColor() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ParseHex parses a hex colour string into an RGB value. The input must be
// exactly six hexadecimal digits after stripping one optional leading '#';
// parsing is case-insensitive. Three-digit shorthand ("#fff") is rejected
// rather than expanded, as is any whitespace: validation of user input
// belongs to the caller, this codec only accepts the canonical form.
func ParseHex(input string) (RGB, error) {
	s := strings.TrimPrefix(input, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must be 6 hex digits", ErrInvalidColourFormat, input)
	}

	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%w: %q contains a non-hex digit", ErrInvalidColourFormat, input)
		}
		out[i] = hi<<4 | lo
	}

	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// hexDigit decodes a single hexadecimal digit, accepting both cases.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
