// Package cli provides the command-line interface for huematch.
package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// execute runs the root command with the given args and returns captured
// stdout. Command flags are package state, so each run resets them to their
// defaults first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	scoreSeason = ""
	scoreThreshold = 0.7
	scoreFormat = "table"
	matchThreshold = 80
	palettesSeason = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "#000000", "fe0101")
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}

	if !strings.Contains(out, "Black") {
		t.Errorf("classify output missing %q:\n%s", "Black", out)
	}
	if !strings.Contains(out, "Red") {
		t.Errorf("classify output missing %q:\n%s", "Red", out)
	}
}

func TestClassifyCommandInvalidHex(t *testing.T) {
	_, err := execute(t, "classify", "zzzzzz")
	if err == nil {
		t.Fatal("classify with invalid hex expected error")
	}
	if !strings.Contains(err.Error(), "invalid colour format") {
		t.Errorf("error = %v, want invalid colour format", err)
	}
}

func TestMatchCommandSame(t *testing.T) {
	// Only the matching path is tested here: a failed match exits the
	// process for shell use.
	out, err := execute(t, "match", "#101010", "#151515")
	if err != nil {
		t.Fatalf("match error = %v", err)
	}
	if !strings.Contains(out, "same") {
		t.Errorf("match output = %q, want verdict 'same'", out)
	}
}

func TestScoreCommandJSON(t *testing.T) {
	out, err := execute(t, "score", "--format", "json", "#d2691e", "#8b4513")
	if err != nil {
		t.Fatalf("score error = %v", err)
	}

	var decoded allScoresJSON
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("score JSON output did not parse: %v\n%s", err, out)
	}
	if len(decoded.Scores) != 12 {
		t.Errorf("score JSON has %d seasons, want 12", len(decoded.Scores))
	}
	for _, s := range decoded.Scores {
		if s.Score < 0 || s.Score > 1 {
			t.Errorf("season %q score %v outside [0, 1]", s.Season, s.Score)
		}
	}
}

func TestScoreCommandSingleSeason(t *testing.T) {
	out, err := execute(t, "score", "--season", "warm autumn", "#d2691e")
	if err != nil {
		t.Fatalf("score error = %v", err)
	}
	if !strings.Contains(out, "warm autumn: 1.000") {
		t.Errorf("score output = %q, want warm autumn: 1.000", out)
	}
}

func TestScoreCommandUnknownSeason(t *testing.T) {
	_, err := execute(t, "score", "--season", "monsoon", "#d2691e")
	if err == nil {
		t.Fatal("score with unknown season expected error")
	}
	if !strings.Contains(err.Error(), "unknown season") {
		t.Errorf("error = %v, want unknown season", err)
	}
}

func TestScoreCommandUnknownFormat(t *testing.T) {
	_, err := execute(t, "score", "--format", "yaml", "#d2691e")
	if err == nil {
		t.Fatal("score with unknown format expected error")
	}
}

func TestPalettesCommand(t *testing.T) {
	out, err := execute(t, "palettes", "--season", "deep winter")
	if err != nil {
		t.Fatalf("palettes error = %v", err)
	}

	if !strings.Contains(out, "deep winter") {
		t.Errorf("palettes output missing season name:\n%s", out)
	}
	for _, band := range []string{"primary", "secondary", "avoid"} {
		if !strings.Contains(out, band) {
			t.Errorf("palettes output missing %q band:\n%s", band, out)
		}
	}
	if strings.Contains(out, "light spring") {
		t.Errorf("palettes --season output includes other seasons:\n%s", out)
	}
}
