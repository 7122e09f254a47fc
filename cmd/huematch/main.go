// Huematch - colour matching and seasonal palette scoring
//
// Huematch classifies colours against a named reference vocabulary and
// scores garments against the twelve seasonal colour palettes.
package main

import (
	"github.com/huematch/huematch/internal/cli"
)

func main() {
	cli.Execute()
}
