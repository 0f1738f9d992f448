package render

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ThemeSpec is a theme as written in .metricard.yaml. Empty fields keep the
// value from the base theme.
type ThemeSpec struct {
	Base   string      `yaml:"base,omitempty"`   // built-in theme to start from
	Border string      `yaml:"border,omitempty"` // rounded, normal, thick, double, hidden
	Colors ThemeColors `yaml:"colors,omitempty"`
	Icons  *TrendIcons `yaml:"icons,omitempty"`
	Mono   *bool       `yaml:"mono,omitempty"`
	ASCII  *bool       `yaml:"ascii,omitempty"`
}

// ThemeColors defines the chrome and change-line palette.
type ThemeColors struct {
	Border   string `yaml:"border,omitempty"`
	Title    string `yaml:"title,omitempty"`
	Value    string `yaml:"value,omitempty"`
	Positive string `yaml:"positive,omitempty"` // change starts with '+'
	Negative string `yaml:"negative,omitempty"` // change starts with '-'
	Neutral  string `yaml:"neutral,omitempty"`  // anything else
}

// Compile builds a Theme from the spec.
func (s ThemeSpec) Compile(name string) Theme {
	t := ThemeByName(s.Base)
	t.Name = name

	if b, ok := borderByName(s.Border); ok {
		t.Frame = t.Frame.Border(b)
	}
	if s.Colors.Border != "" {
		t.Frame = t.Frame.BorderForeground(lipgloss.Color(s.Colors.Border))
	}
	t.Title = withForeground(t.Title, s.Colors.Title)
	t.Value = withForeground(t.Value, s.Colors.Value)
	t.Positive = withForeground(t.Positive, s.Colors.Positive)
	t.Negative = withForeground(t.Negative, s.Colors.Negative)
	t.Neutral = withForeground(t.Neutral, s.Colors.Neutral)

	if s.Icons != nil {
		t.Icons = *s.Icons
	}
	if s.Mono != nil {
		t.Mono = *s.Mono
	}
	if s.ASCII != nil {
		t.ASCII = *s.ASCII
	}
	return t
}

func withForeground(st lipgloss.Style, color string) lipgloss.Style {
	if color == "" {
		return st
	}
	return st.Foreground(lipgloss.Color(color))
}

func borderByName(name string) (lipgloss.Border, bool) {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "normal":
		return lipgloss.NormalBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

// ResolveTheme returns the custom theme called name if there is one,
// otherwise the built-in theme of that name.
func ResolveTheme(name string, custom map[string]ThemeSpec) Theme {
	if spec, ok := custom[name]; ok {
		return spec.Compile(name)
	}
	return ThemeByName(name)
}

// AllThemes returns the built-in themes followed by the custom ones in name
// order. A custom theme sharing a built-in name replaces it in place.
func AllThemes(custom map[string]ThemeSpec) []Theme {
	builtin := ThemeNames()
	themes := make([]Theme, 0, len(builtin)+len(custom))
	seen := make(map[string]bool, len(builtin))
	for _, n := range builtin {
		themes = append(themes, ResolveTheme(n, custom))
		seen[n] = true
	}
	extra := make([]string, 0, len(custom))
	for n := range custom {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	for _, n := range extra {
		themes = append(themes, custom[n].Compile(n))
	}
	return themes
}
