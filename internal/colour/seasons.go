package colour

import (
	"fmt"
	"strings"
)

// Season identifies one of the twelve personal-colour-analysis palettes.
// The set is closed: scoring always covers exactly these twelve.
type Season int

const (
	SeasonLightSpring Season = iota
	SeasonWarmSpring
	SeasonBrightSpring
	SeasonLightSummer
	SeasonCoolSummer
	SeasonSoftSummer
	SeasonSoftAutumn
	SeasonWarmAutumn
	SeasonDeepAutumn
	SeasonDeepWinter
	SeasonCoolWinter
	SeasonBrightWinter

	seasonCount = 12
)

// String returns the season's display name.
func (s Season) String() string {
	switch s {
	case SeasonLightSpring:
		return "light spring"
	case SeasonWarmSpring:
		return "warm spring"
	case SeasonBrightSpring:
		return "bright spring"
	case SeasonLightSummer:
		return "light summer"
	case SeasonCoolSummer:
		return "cool summer"
	case SeasonSoftSummer:
		return "soft summer"
	case SeasonSoftAutumn:
		return "soft autumn"
	case SeasonWarmAutumn:
		return "warm autumn"
	case SeasonDeepAutumn:
		return "deep autumn"
	case SeasonDeepWinter:
		return "deep winter"
	case SeasonCoolWinter:
		return "cool winter"
	case SeasonBrightWinter:
		return "bright winter"
	default:
		return "unknown"
	}
}

// ParseSeason resolves a display name (case-insensitive, spaces or dashes)
// back to a Season. Used at the CLI boundary only.
func ParseSeason(name string) (Season, error) {
	normalised := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", " "))
	for _, s := range Seasons() {
		if s.String() == normalised {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown season %q", name)
}

// Seasons returns all twelve seasons in declaration order.
func Seasons() []Season {
	seasons := make([]Season, seasonCount)
	for i := range seasons {
		seasons[i] = Season(i)
	}
	return seasons
}

// Band is one of the three desirability tiers within a seasonal palette,
// in strictly descending desirability.
type Band int

const (
	BandPrimary Band = iota
	BandSecondary
	BandAvoid
)

// String returns the band's display name.
func (b Band) String() string {
	switch b {
	case BandPrimary:
		return "primary"
	case BandSecondary:
		return "secondary"
	case BandAvoid:
		return "avoid"
	default:
		return "unknown"
	}
}

// SeasonPalette defines a season by three non-empty colour bands: colours
// that are ideal for it, colours that are acceptable, and colours that are
// actively penalised. A colour must not appear in more than one band of the
// same palette; that is a data-entry invariant checked by tests, not at
// runtime.
type SeasonPalette struct {
	Season    Season
	Primary   []RGB
	Secondary []RGB
	Avoid     []RGB
}

// Band returns the colour list for the given band.
func (p *SeasonPalette) Band(b Band) []RGB {
	switch b {
	case BandPrimary:
		return p.Primary
	case BandSecondary:
		return p.Secondary
	case BandAvoid:
		return p.Avoid
	default:
		return nil
	}
}

// Palette returns the fixed palette definition for a season. The returned
// value is shared; callers must not modify it.
func Palette(s Season) *SeasonPalette {
	return &seasonPalettes[s]
}

// mustHex converts curated hex values into RGB at table init. Bad data here
// is invalid configuration, so it panics rather than returning an error.
func mustHex(values ...string) []RGB {
	out := make([]RGB, len(values))
	for i, v := range values {
		rgb, err := ParseHex(v)
		if err != nil {
			panic(fmt.Sprintf("seasonal palette table: %v", err))
		}
		out[i] = rgb
	}
	return out
}

// seasonPalettes holds the editorially curated band colours for all twelve
// seasons, indexed by Season. The values follow standard seasonal colour
// analysis references: springs are warm and clear, summers cool and muted,
// autumns warm and deep, winters cool and high-contrast.
var seasonPalettes = [seasonCount]SeasonPalette{
	SeasonLightSpring: {
		Season:    SeasonLightSpring,
		Primary:   mustHex("#ffdab9", "#fffdd0", "#ffffe0", "#ffb6c1", "#98fb98", "#afeeee", "#f0e68c", "#ffe4e1"),
		Secondary: mustHex("#ff7f50", "#fa8072", "#87ceeb", "#40e0d0", "#ffd700", "#90ee90", "#c19a6b", "#dda0dd"),
		Avoid:     mustHex("#000000", "#36454f", "#800020", "#000080", "#4b0082", "#3b2f2f", "#556b2f", "#2f4f4f"),
	},
	SeasonWarmSpring: {
		Season:    SeasonWarmSpring,
		Primary:   mustHex("#ff7f50", "#ffa500", "#ffd700", "#9acd32", "#40e0d0", "#ff6347", "#f4a460", "#ffdab9"),
		Secondary: mustHex("#e9967a", "#daa520", "#8fbc8f", "#87ceeb", "#cd853f", "#ffb6c1", "#adff2f", "#20b2aa"),
		Avoid:     mustHex("#000000", "#808080", "#800020", "#4b0082", "#2f4f4f", "#c0c0c0", "#708090", "#191970"),
	},
	SeasonBrightSpring: {
		Season:    SeasonBrightSpring,
		Primary:   mustHex("#ff4500", "#ff1493", "#00ced1", "#ffd700", "#7fff00", "#ff6347", "#00bfff", "#ff69b4"),
		Secondary: mustHex("#ffa500", "#40e0d0", "#adff2f", "#f08080", "#1e90ff", "#ffdab9", "#98fb98", "#dc143c"),
		Avoid:     mustHex("#808080", "#a9a9a9", "#bc8f8f", "#696969", "#8b7d6b", "#d3d3d3", "#556b2f", "#708090"),
	},
	SeasonLightSummer: {
		Season:    SeasonLightSummer,
		Primary:   mustHex("#b0e0e6", "#e6e6fa", "#ffc0cb", "#d8bfd8", "#add8e6", "#f0f8ff", "#dcdcdc", "#c6e2ff"),
		Secondary: mustHex("#87ceeb", "#dda0dd", "#afeeee", "#f08080", "#b0c4de", "#ffb6c1", "#98d8c8", "#e0ffff"),
		Avoid:     mustHex("#ff4500", "#ffa500", "#8b4513", "#ff8c00", "#d2691e", "#000000", "#ffd700", "#a0522d"),
	},
	SeasonCoolSummer: {
		Season:    SeasonCoolSummer,
		Primary:   mustHex("#4682b4", "#708090", "#9370db", "#db7093", "#5f9ea0", "#6a5acd", "#b0c4de", "#778899"),
		Secondary: mustHex("#87ceeb", "#d8bfd8", "#c71585", "#4169e1", "#20b2aa", "#dda0dd", "#6495ed", "#e6e6fa"),
		Avoid:     mustHex("#ff4500", "#ffa500", "#8b4513", "#d2691e", "#ffd700", "#adff2f", "#ff6347", "#cd853f"),
	},
	SeasonSoftSummer: {
		Season:    SeasonSoftSummer,
		Primary:   mustHex("#778899", "#b0c4de", "#bc8f8f", "#d8bfd8", "#a9a9a9", "#8fbc8f", "#c4aead", "#9e8b8e"),
		Secondary: mustHex("#708090", "#dda0dd", "#db7093", "#5f9ea0", "#9370db", "#cdb5cd", "#afeeee", "#d3d3d3"),
		Avoid:     mustHex("#ff0000", "#ff4500", "#ffd700", "#00ff00", "#ff00ff", "#00ffff", "#ff8c00", "#000000"),
	},
	SeasonSoftAutumn: {
		Season:    SeasonSoftAutumn,
		Primary:   mustHex("#c19a6b", "#bdb76b", "#bc8f8f", "#d2b48c", "#a0826d", "#8fbc8f", "#cd9575", "#b87333"),
		Secondary: mustHex("#daa520", "#a0522d", "#808000", "#deb887", "#cd853f", "#556b2f", "#e9967a", "#b8860b"),
		Avoid:     mustHex("#ff00ff", "#00ffff", "#0000ff", "#ff1493", "#00ff00", "#000000", "#ffffff", "#ff0000"),
	},
	SeasonWarmAutumn: {
		Season:    SeasonWarmAutumn,
		Primary:   mustHex("#d2691e", "#b8860b", "#cd853f", "#a0522d", "#808000", "#ff8c00", "#8b4513", "#daa520"),
		Secondary: mustHex("#bdb76b", "#c19a6b", "#e9967a", "#b22222", "#556b2f", "#deb887", "#ff7f50", "#8b0000"),
		Avoid:     mustHex("#0000ff", "#ff00ff", "#00ffff", "#e6e6fa", "#c0c0c0", "#ffc0cb", "#87ceeb", "#ffffff"),
	},
	SeasonDeepAutumn: {
		Season:    SeasonDeepAutumn,
		Primary:   mustHex("#8b4513", "#800000", "#556b2f", "#8b0000", "#2f4f4f", "#654321", "#b8860b", "#4a2c2a"),
		Secondary: mustHex("#a0522d", "#6b8e23", "#b22222", "#d2691e", "#808000", "#8b008b", "#483c32", "#cd5c5c"),
		Avoid:     mustHex("#ffc0cb", "#e6e6fa", "#afeeee", "#fffdd0", "#d3d3d3", "#98fb98", "#ffffe0", "#b0e0e6"),
	},
	SeasonDeepWinter: {
		Season:    SeasonDeepWinter,
		Primary:   mustHex("#000000", "#191970", "#4b0082", "#800020", "#006400", "#2f4f4f", "#483d8b", "#8b008b"),
		Secondary: mustHex("#dc143c", "#0000cd", "#008b8b", "#9400d3", "#ffffff", "#c71585", "#00008b", "#228b22"),
		Avoid:     mustHex("#ffdab9", "#f4a460", "#d2b48c", "#c19a6b", "#e9967a", "#deb887", "#cd853f", "#ffe4b5"),
	},
	SeasonCoolWinter: {
		Season:    SeasonCoolWinter,
		Primary:   mustHex("#0000ff", "#ff00ff", "#00ffff", "#ffffff", "#000000", "#4169e1", "#c71585", "#8a2be2"),
		Secondary: mustHex("#dc143c", "#00008b", "#9370db", "#008b8b", "#ff69b4", "#191970", "#9400d3", "#e6e6fa"),
		Avoid:     mustHex("#ffa500", "#8b4513", "#daa520", "#d2691e", "#808000", "#cd853f", "#f4a460", "#bdb76b"),
	},
	SeasonBrightWinter: {
		Season:    SeasonBrightWinter,
		Primary:   mustHex("#ff0000", "#0000ff", "#ff00ff", "#00ffff", "#ffff00", "#ff1493", "#00ff7f", "#1e90ff"),
		Secondary: mustHex("#ffffff", "#000000", "#8a2be2", "#dc143c", "#00ced1", "#ff69b4", "#7fff00", "#4169e1"),
		Avoid:     mustHex("#bc8f8f", "#c19a6b", "#bdb76b", "#d2b48c", "#a9a9a9", "#8fbc8f", "#deb887", "#696969"),
	},
}
