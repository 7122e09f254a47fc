package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 6
)

// DisableColourOutput suppresses ANSI escapes globally. Set once at startup
// (by the CLI, from --no-colour or a non-TTY stdout) before any rendering.
var DisableColourOutput = false

// Swatch returns a solid colour block rendered with ANSI background escapes,
// width characters wide. Returns spaces when colour output is disabled so
// column alignment survives.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return block
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + block + ansiReset
}

// Tinted returns text rendered in the given foreground colour, or the plain
// text when colour output is disabled.
func Tinted(c RGB, text string) string {
	if DisableColourOutput {
		return text
	}
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
	return fg + text + ansiReset
}
