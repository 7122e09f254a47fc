package colour

import (
	"errors"
	"sort"
)

// ErrEmptyColourSet is returned by ScoreGarment when called with no colours.
// It marks a contract violation at the call site, not a recoverable state.
var ErrEmptyColourSet = errors.New("empty colour set")

// Distance breakpoints for the tiered scorer. These are tuned constants and
// part of the scoring contract: tests pin exact scores at and around each.
const (
	// perfectMatchDistance is the redmean distance under which a colour
	// counts as sitting on a band reference value.
	perfectMatchDistance = 30
	// goodMatchDistance is the outer edge of a clearly-related colour.
	goodMatchDistance = 80
	// maxMatchDistance is the ceiling beyond which a colour is unrelated
	// to the band and receives the floor score.
	maxMatchDistance = 200
)

const (
	// avoidScore is the penalty score for colours sitting on an avoid
	// reference, regardless of their closeness to other bands.
	avoidScore = 0.1
	// floorScore is the minimum score for colours unrelated to any band.
	floorScore = 0.2
	// NeutralScore is what every season receives for a garment with no
	// recorded colours: usable but uninformative.
	NeutralScore = 0.5
	// DefaultBestMatchThreshold is the minimum season score shown as a
	// recommendation by default.
	DefaultBestMatchThreshold = 0.7
)

// minBandDistance returns the smallest redmean distance from c to any colour
// in the band.
func minBandDistance(c RGB, band []RGB) float64 {
	best := Distance(c, band[0])
	for _, v := range band[1:] {
		if d := Distance(c, v); d < best {
			best = d
		}
	}
	return best
}

// ScoreColour scores how well a single colour suits a seasonal palette,
// returning a value in [0, 1]. The score is tiered rather than a single
// monotone function of distance, so that the curated bands keep distinct
// meanings:
//
//	near an avoid colour     -> 0.1, before anything else is considered
//	near a primary colour    -> 1.0, or 0.85..1.0 within the good-match range
//	near a secondary colour  -> 0.8, or 0.6..0.8 within the good-match range
//	otherwise                -> 0.2..0.6 fading with distance, floor 0.2
//
// The avoid check runs first on purpose: a colour an editor flagged as
// clashing is penalised even when it happens to sit close to a primary
// reference as well.
func ScoreColour(c RGB, palette *SeasonPalette) float64 {
	if minBandDistance(c, palette.Avoid) < perfectMatchDistance {
		return avoidScore
	}

	primaryDist := minBandDistance(c, palette.Primary)
	if primaryDist < perfectMatchDistance {
		return 1.0
	}
	if primaryDist < goodMatchDistance {
		return 0.85 + 0.15*(1-primaryDist/goodMatchDistance)
	}

	secondaryDist := minBandDistance(c, palette.Secondary)
	if secondaryDist < perfectMatchDistance {
		return 0.8
	}
	if secondaryDist < goodMatchDistance {
		return 0.6 + 0.2*(1-secondaryDist/goodMatchDistance)
	}

	overallDist := primaryDist
	if secondaryDist < overallDist {
		overallDist = secondaryDist
	}
	if overallDist > maxMatchDistance {
		return floorScore
	}
	return floorScore + 0.4*(1-overallDist/maxMatchDistance)
}

// ScoreGarment scores a garment, represented by its recorded colours,
// against one seasonal palette as the arithmetic mean of the per-colour
// scores. Callers must supply at least one colour; an empty set fails fast
// with ErrEmptyColourSet instead of silently defaulting. Items that may
// legitimately have no colours yet go through ScoreSeasons instead.
func ScoreGarment(colours []RGB, palette *SeasonPalette) (float64, error) {
	if len(colours) == 0 {
		return 0, ErrEmptyColourSet
	}

	var sum float64
	for _, c := range colours {
		sum += ScoreColour(c, palette)
	}
	return sum / float64(len(colours)), nil
}

// ScoreSeasons scores a garment against all twelve seasonal palettes and
// returns the full score map, never a subset. A garment with no recorded
// colours yet gets NeutralScore for every season rather than an error: this
// entry point serves item display, where an incomplete item must still
// render.
func ScoreSeasons(colours []RGB) map[Season]float64 {
	scores := make(map[Season]float64, seasonCount)
	for _, s := range Seasons() {
		if len(colours) == 0 {
			scores[s] = NeutralScore
			continue
		}
		score, _ := ScoreGarment(colours, Palette(s))
		scores[s] = score
	}
	return scores
}

// SeasonScore pairs a season with its garment compatibility score.
type SeasonScore struct {
	Season Season  `json:"season"`
	Score  float64 `json:"score"`
}

// BestMatches filters a season score map to the seasons scoring at least
// threshold, sorted by score descending. Equal scores keep season
// declaration order, which makes the output deterministic.
func BestMatches(scores map[Season]float64, threshold float64) []SeasonScore {
	matches := make([]SeasonScore, 0, len(scores))
	for season, score := range scores {
		if score >= threshold {
			matches = append(matches, SeasonScore{Season: season, Score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Season < matches[j].Season
	})

	return matches
}
