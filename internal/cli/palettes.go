// Package cli provides the command-line interface for huematch.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/huematch/huematch/internal/colour"
)

var palettesSeason string

// palettesCmd represents the palettes command
var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "Show the seasonal palette definitions",
	Long: `Render the twelve seasonal palette tables with their primary, secondary
and avoid bands as colour swatches. Limit output to one season with --season.

Examples:
  # All twelve palettes
  huematch palettes

  # One season
  huematch palettes --season 'deep winter'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seasons := colour.Seasons()
		if palettesSeason != "" {
			season, err := colour.ParseSeason(palettesSeason)
			if err != nil {
				return err
			}
			seasons = []colour.Season{season}
		}

		for _, s := range seasons {
			p := colour.Palette(s)
			cmd.Printf("%s\n", s)
			for _, band := range []colour.Band{colour.BandPrimary, colour.BandSecondary, colour.BandAvoid} {
				cmd.Printf("  %-9s ", band)
				for _, c := range p.Band(band) {
					cmd.Printf("%s ", colour.Swatch(c, 3))
				}
				cmd.Println()
			}
			cmd.Println()
		}
		return nil
	},
}

func init() {
	palettesCmd.Flags().StringVarP(&palettesSeason, "season", "s", "", "show a single season only")
}
