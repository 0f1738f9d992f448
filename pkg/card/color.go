package card

// Color selects one of the fixed badge palettes.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Purple Color = "purple"
)

// Swatch is a background/foreground pair, as hex colours.
type Swatch struct {
	Background string `json:"background,omitempty"`
	Foreground string `json:"foreground,omitempty"`
}

// IsZero reports whether the swatch carries no colours.
func (s Swatch) IsZero() bool { return s.Background == "" && s.Foreground == "" }

// Light tint behind a saturated glyph, one pair per colour.
var palette = map[Color]Swatch{
	Red:    {Background: "#FEE2E2", Foreground: "#DC2626"},
	Blue:   {Background: "#DBEAFE", Foreground: "#2563EB"},
	Green:  {Background: "#DCFCE7", Foreground: "#16A34A"},
	Purple: {Background: "#F3E8FF", Foreground: "#9333EA"},
}

// ResolveColor looks c up in the palette. There is no fallback: an unknown
// colour returns a zero Swatch and false.
func ResolveColor(c Color) (Swatch, bool) {
	sw, ok := palette[c]
	return sw, ok
}

// Colors lists the palette in display order.
func Colors() []Color {
	return []Color{Red, Blue, Green, Purple}
}
