// Package cli provides the command-line interface for huematch.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huematch/huematch/internal/colour"
)

var matchThreshold float64

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <hex> <hex>",
	Short: "Test whether two colours are perceptually the same",
	Long: `Compare two colours using redmean perceptual distance and report whether
they fall within the match threshold. The default threshold corresponds to
"same perceived colour family"; lower it for stricter matching.

Exits with status 1 when the colours do not match, so the command can be
used directly in shell conditionals.

Examples:
  # Same family check with the default threshold
  huematch match '#000000' '#101010'

  # Strict comparison
  huematch match --threshold 20 1560bd 1e90ff`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := colour.ParseHex(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse colour %q: %w", args[0], err)
		}
		b, err := colour.ParseHex(args[1])
		if err != nil {
			return fmt.Errorf("failed to parse colour %q: %w", args[1], err)
		}

		dist := colour.Distance(a, b)
		matched := colour.Matches(a, b, matchThreshold)
		logger.Debug("compared colours",
			"a", a.Hex(), "b", b.Hex(),
			"distance", dist, "threshold", matchThreshold)

		verdict := "different"
		if matched {
			verdict = "same"
		}
		cmd.Printf("%s  %s\n", colour.Swatch(a, 0), a.Hex())
		cmd.Printf("%s  %s\n", colour.Swatch(b, 0), b.Hex())
		cmd.Printf("distance %.2f (threshold %.0f): %s\n", dist, matchThreshold, verdict)

		if !matched {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().Float64VarP(&matchThreshold, "threshold", "t", colour.DefaultMatchThreshold,
		"redmean distance below which colours count as the same")
}
