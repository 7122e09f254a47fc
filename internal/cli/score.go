// Package cli provides the command-line interface for huematch.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huematch/huematch/internal/colour"
)

var (
	// Score command flags
	scoreSeason    string
	scoreThreshold float64
	scoreFormat    string
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score <hex>...",
	Short: "Score a garment's colours against the seasonal palettes",
	Long: `Score a garment, given as one or more colours, against the twelve seasonal
colour palettes. Without --season the full score map is printed together with
the best matches at or above the threshold; with --season only that palette
is scored.

Examples:
  # Full seasonal breakdown for a two-colour garment
  huematch score '#d2691e' '#8b4513'

  # One palette only
  huematch score --season 'warm autumn' d2691e

  # Machine-readable output with a stricter recommendation cut-off
  huematch score --format json --threshold 0.8 d2691e 8b4513`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colours := make([]colour.RGB, len(args))
		for i, arg := range args {
			rgb, err := colour.ParseHex(arg)
			if err != nil {
				return fmt.Errorf("failed to parse colour %q: %w", arg, err)
			}
			colours[i] = rgb
		}

		if scoreSeason != "" {
			return runScoreSeason(cmd, colours)
		}
		return runScoreAll(cmd, colours)
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreSeason, "season", "s", "", "score against a single season (e.g. 'warm autumn')")
	scoreCmd.Flags().Float64VarP(&scoreThreshold, "threshold", "t", colour.DefaultBestMatchThreshold,
		"minimum score for a season to count as a best match")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "table", "output format (table, json)")
}

// runScoreSeason scores the garment against one named palette.
func runScoreSeason(cmd *cobra.Command, colours []colour.RGB) error {
	season, err := colour.ParseSeason(scoreSeason)
	if err != nil {
		return err
	}

	score, err := colour.ScoreGarment(colours, colour.Palette(season))
	if err != nil {
		return fmt.Errorf("failed to score garment: %w", err)
	}
	logger.Debug("scored garment", "season", season.String(), "colours", len(colours), "score", score)

	switch scoreFormat {
	case "json":
		return writeJSON(cmd, seasonScoreJSON{Season: season.String(), Score: score})
	case "table":
		cmd.Printf("%s: %.3f\n", season, score)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected table or json)", scoreFormat)
	}
}

// runScoreAll scores the garment against all twelve palettes and reports
// the best matches at or above the threshold.
func runScoreAll(cmd *cobra.Command, colours []colour.RGB) error {
	scores := colour.ScoreSeasons(colours)
	best := colour.BestMatches(scores, scoreThreshold)
	logger.Debug("scored garment against all seasons", "colours", len(colours), "best", len(best))

	switch scoreFormat {
	case "json":
		out := allScoresJSON{
			Scores: make([]seasonScoreJSON, 0, len(scores)),
			Best:   make([]seasonScoreJSON, 0, len(best)),
		}
		for _, s := range colour.Seasons() {
			out.Scores = append(out.Scores, seasonScoreJSON{Season: s.String(), Score: scores[s]})
		}
		for _, m := range best {
			out.Best = append(out.Best, seasonScoreJSON{Season: m.Season.String(), Score: m.Score})
		}
		return writeJSON(cmd, out)
	case "table":
		bestSet := make(map[colour.Season]bool, len(best))
		for _, m := range best {
			bestSet[m.Season] = true
		}

		table := NewTable([]string{"Season", "Score", "Match"})
		for _, s := range colour.Seasons() {
			marker := ""
			if bestSet[s] {
				marker = "*"
			}
			table.AddRow([]string{s.String(), fmt.Sprintf("%.3f", scores[s]), marker})
		}
		cmd.Print(table.Render())
		cmd.Printf("\n* best matches (score >= %.2f)\n", scoreThreshold)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected table or json)", scoreFormat)
	}
}

// seasonScoreJSON is the wire shape for one season's score.
type seasonScoreJSON struct {
	Season string  `json:"season"`
	Score  float64 `json:"score"`
}

// allScoresJSON is the wire shape for a full twelve-season scoring run.
type allScoresJSON struct {
	Scores []seasonScoreJSON `json:"scores"`
	Best   []seasonScoreJSON `json:"best"`
}

// writeJSON marshals v with indentation to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
