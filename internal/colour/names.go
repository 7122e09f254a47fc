package colour

// NamedColour pairs a canonical colour name with its reference RGB value.
type NamedColour struct {
	Name string `json:"name"`
	RGB  RGB    `json:"rgb"`
}

// referenceColours is the fixed classification vocabulary. Names are stored
// lowercase; ClosestName capitalises on output. Order matters: when two
// entries are equidistant from a query the first one wins, so entries are
// grouped by hue and ordered dark to light within each group to keep
// tie-breaking stable across edits.
var referenceColours = []NamedColour{
	// Neutrals.
	{Name: "black", RGB: RGB{0x00, 0x00, 0x00}},
	{Name: "charcoal", RGB: RGB{0x36, 0x45, 0x4f}},
	{Name: "dark grey", RGB: RGB{0x40, 0x40, 0x40}},
	{Name: "grey", RGB: RGB{0x80, 0x80, 0x80}},
	{Name: "silver", RGB: RGB{0xc0, 0xc0, 0xc0}},
	{Name: "light grey", RGB: RGB{0xd3, 0xd3, 0xd3}},
	{Name: "white", RGB: RGB{0xff, 0xff, 0xff}},

	// Reds.
	{Name: "maroon", RGB: RGB{0x80, 0x00, 0x00}},
	{Name: "burgundy", RGB: RGB{0x80, 0x00, 0x20}},
	{Name: "dark red", RGB: RGB{0x8b, 0x00, 0x00}},
	{Name: "crimson", RGB: RGB{0xdc, 0x14, 0x3c}},
	{Name: "red", RGB: RGB{0xff, 0x00, 0x00}},

	// Pinks.
	{Name: "rose", RGB: RGB{0xff, 0x00, 0x7f}},
	{Name: "hot pink", RGB: RGB{0xff, 0x69, 0xb4}},
	{Name: "salmon", RGB: RGB{0xfa, 0x80, 0x72}},
	{Name: "pink", RGB: RGB{0xff, 0xc0, 0xcb}},

	// Oranges.
	{Name: "coral", RGB: RGB{0xff, 0x7f, 0x50}},
	{Name: "dark orange", RGB: RGB{0xff, 0x8c, 0x00}},
	{Name: "orange", RGB: RGB{0xff, 0xa5, 0x00}},
	{Name: "peach", RGB: RGB{0xff, 0xda, 0xb9}},

	// Browns.
	{Name: "brown", RGB: RGB{0x8b, 0x45, 0x13}},
	{Name: "chocolate", RGB: RGB{0xd2, 0x69, 0x1e}},
	{Name: "camel", RGB: RGB{0xc1, 0x9a, 0x6b}},
	{Name: "tan", RGB: RGB{0xd2, 0xb4, 0x8c}},
	{Name: "khaki", RGB: RGB{0xc3, 0xb0, 0x91}},
	{Name: "beige", RGB: RGB{0xf5, 0xf5, 0xdc}},

	// Yellows.
	{Name: "mustard", RGB: RGB{0xe1, 0xad, 0x01}},
	{Name: "gold", RGB: RGB{0xff, 0xd7, 0x00}},
	{Name: "yellow", RGB: RGB{0xff, 0xff, 0x00}},
	{Name: "cream", RGB: RGB{0xff, 0xfd, 0xd0}},

	// Greens.
	{Name: "dark green", RGB: RGB{0x00, 0x64, 0x00}},
	{Name: "olive", RGB: RGB{0x80, 0x80, 0x00}},
	{Name: "green", RGB: RGB{0x00, 0x80, 0x00}},
	{Name: "lime", RGB: RGB{0x00, 0xff, 0x00}},
	{Name: "mint", RGB: RGB{0x98, 0xff, 0x98}},

	// Blues and cyans.
	{Name: "teal", RGB: RGB{0x00, 0x80, 0x80}},
	{Name: "turquoise", RGB: RGB{0x40, 0xe0, 0xd0}},
	{Name: "cyan", RGB: RGB{0x00, 0xff, 0xff}},
	{Name: "navy", RGB: RGB{0x00, 0x00, 0x80}},
	{Name: "denim", RGB: RGB{0x15, 0x60, 0xbd}},
	{Name: "blue", RGB: RGB{0x00, 0x00, 0xff}},
	{Name: "sky blue", RGB: RGB{0x87, 0xce, 0xeb}},

	// Purples.
	{Name: "purple", RGB: RGB{0x80, 0x00, 0x80}},
	{Name: "violet", RGB: RGB{0x8a, 0x2b, 0xe2}},
	{Name: "magenta", RGB: RGB{0xff, 0x00, 0xff}},
	{Name: "lavender", RGB: RGB{0xe6, 0xe6, 0xfa}},
}

// ReferenceColours returns the fixed ordered table of named reference
// colours. The slice is shared; callers must not modify it.
func ReferenceColours() []NamedColour {
	return referenceColours
}

// ClosestName classifies a colour against the reference vocabulary and
// returns the name of the perceptually closest entry, capitalised. An exact
// RGB match short-circuits before any distance is computed, so canonical
// colours always map back to their own name. Otherwise the first entry with
// the minimum redmean distance wins; the table order is fixed, which makes
// ties deterministic.
func ClosestName(c RGB) string {
	for _, ref := range referenceColours {
		if ref.RGB == c {
			return capitalise(ref.Name)
		}
	}

	best := referenceColours[0]
	bestDist := Distance(c, best.RGB)
	for _, ref := range referenceColours[1:] {
		if d := Distance(c, ref.RGB); d < bestDist {
			best = ref
			bestDist = d
		}
	}

	return capitalise(best.Name)
}

// capitalise uppercases the first letter and leaves the rest as stored.
// Names are ASCII by construction.
func capitalise(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
