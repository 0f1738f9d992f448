package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/metricard/pkg/card"
)

// Theme defines the card chrome and the change-line styles for terminal
// rendering. Badge colours come from the card palette, not the theme.
type Theme struct {
	Name     string
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Value    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Neutral  lipgloss.Style
	// Mono drops badge colours entirely.
	Mono bool
	// ASCII draws icons with their ASCII stand-ins.
	ASCII bool
	Icons TrendIcons
}

// TrendIcons prefix the change line. Empty strings add nothing.
type TrendIcons struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
	Flat string `yaml:"flat"`
}

// DefaultTheme returns a light, colourful theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#E5E7EB")).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")), // gray-500
		Value:    lipgloss.NewStyle().Bold(true),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")), // green
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")), // red
		Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")), // gray-600
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name: "orca",
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Value:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Icons:    TrendIcons{Up: "↑", Down: "↓", Flat: "="},
	}
}

// MonoTheme returns a monochrome theme (no colors). Trend survives as a glyph.
func MonoTheme() Theme {
	return Theme{
		Name:     "mono",
		Frame:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Title:    lipgloss.NewStyle(),
		Value:    lipgloss.NewStyle().Bold(true),
		Positive: lipgloss.NewStyle(),
		Negative: lipgloss.NewStyle(),
		Neutral:  lipgloss.NewStyle(),
		Mono:     true,
		ASCII:    true,
		Icons:    TrendIcons{Up: "+", Down: "-", Flat: "="},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// ThemeNames lists the built-in themes in cycling order.
func ThemeNames() []string {
	return []string{"default", "orca", "mono"}
}

func (t Theme) trendStyle(tr card.Trend) lipgloss.Style {
	switch tr {
	case card.Positive:
		return t.Positive
	case card.Negative:
		return t.Negative
	default:
		return t.Neutral
	}
}

func (t Theme) trendIcon(tr card.Trend) string {
	switch tr {
	case card.Positive:
		return t.Icons.Up
	case card.Negative:
		return t.Icons.Down
	default:
		return t.Icons.Flat
	}
}
