package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestThemeSpec_CompileFromYAML(t *testing.T) {
	src := `
base: orca
border: double
colors:
  positive: "#00FF00"
  title: "#123456"
icons:
  up: "▲"
  down: "▼"
  flat: "·"
ascii: true
`
	var spec ThemeSpec
	require.NoError(t, yaml.Unmarshal([]byte(src), &spec))

	th := spec.Compile("neon")
	assert.Equal(t, "neon", th.Name)
	assert.Equal(t, lipgloss.Color("#00FF00"), th.Positive.GetForeground())
	assert.Equal(t, lipgloss.Color("#123456"), th.Title.GetForeground())
	assert.Equal(t, OrcaTheme().Negative.GetForeground(), th.Negative.GetForeground(), "unset colours keep the base")
	assert.Equal(t, lipgloss.DoubleBorder(), th.Frame.GetBorderStyle())
	assert.Equal(t, TrendIcons{Up: "▲", Down: "▼", Flat: "·"}, th.Icons)
	assert.True(t, th.ASCII)
	assert.False(t, th.Mono)
}

func TestThemeSpec_EmptyKeepsBase(t *testing.T) {
	th := ThemeSpec{}.Compile("plain-default")
	def := DefaultTheme()
	assert.Equal(t, def.Positive.GetForeground(), th.Positive.GetForeground())
	assert.Equal(t, lipgloss.RoundedBorder(), th.Frame.GetBorderStyle())
}

func TestResolveTheme(t *testing.T) {
	custom := map[string]ThemeSpec{"neon": {Colors: ThemeColors{Positive: "#39FF14"}}}
	assert.Equal(t, lipgloss.Color("#39FF14"), ResolveTheme("neon", custom).Positive.GetForeground())
	assert.Equal(t, "mono", ResolveTheme("mono", custom).Name)
	assert.Equal(t, "default", ResolveTheme("missing", nil).Name)
}

func TestAllThemes_Order(t *testing.T) {
	mono := false
	custom := map[string]ThemeSpec{
		"zeta":  {},
		"alpha": {},
		"mono":  {Base: "mono", Mono: &mono},
	}
	var names []string
	for _, th := range AllThemes(custom) {
		names = append(names, th.Name)
	}
	assert.Equal(t, []string{"default", "orca", "mono", "alpha", "zeta"}, names)
	assert.False(t, AllThemes(custom)[2].Mono, "custom mono replaces the built-in")
}
