// Package cli provides the command-line interface for huematch.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huematch/huematch/internal/colour"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <hex>...",
	Short: "Name colours using the reference vocabulary",
	Long: `Classify one or more colours against the fixed table of named reference
colours. Each colour is resolved to the perceptually closest reference name
using redmean distance; an exact hex match returns its own name.

Examples:
  # Name a single colour
  huematch classify '#1560bd'

  # Name several colours at once
  huematch classify 36454f c19a6b ffdab9`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			rgb, err := colour.ParseHex(arg)
			if err != nil {
				return fmt.Errorf("failed to parse colour %q: %w", arg, err)
			}

			name := colour.ClosestName(rgb)
			ref, ok := referenceByName(name)
			if ok {
				logger.Debug("classified colour",
					"input", rgb.Hex(),
					"name", name,
					"distance", colour.Distance(rgb, ref.RGB))
			}

			cmd.Printf("%s  %s  %s\n", colour.Swatch(rgb, 0), rgb.Hex(), colour.Tinted(rgb, name))
		}
		return nil
	},
}

// referenceByName looks a classified name back up in the reference table.
// Classified names differ from stored names only in capitalisation.
func referenceByName(name string) (colour.NamedColour, bool) {
	for _, ref := range colour.ReferenceColours() {
		if strings.EqualFold(ref.Name, name) {
			return ref, true
		}
	}
	return colour.NamedColour{}, false
}
