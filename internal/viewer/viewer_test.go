package viewer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/metricard/pkg/card"
	"github.com/dkoosis/metricard/pkg/icon"
	"github.com/dkoosis/metricard/pkg/render"
)

func views() []card.View {
	users, _ := icon.Lookup("users")
	return []card.View{
		card.Build(card.Props{Title: "Active Users", Value: 1204, Change: "+12%", Icon: users, Color: card.Blue}),
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_NotReadyBeforeSize(t *testing.T) {
	m := New(views(), render.AllThemes(nil), "default")
	assert.Equal(t, "loading…", m.View())
}

func TestModel_RendersAfterResize(t *testing.T) {
	var m tea.Model = New(views(), render.AllThemes(nil), "default")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	out := m.View()
	assert.Contains(t, out, "metricard · 1 cards")
	assert.Contains(t, out, "Active Users")
	assert.Contains(t, out, "+12% vs last week")
	assert.Contains(t, out, "theme: default")
}

func TestModel_CyclesThemes(t *testing.T) {
	var m tea.Model = New(views(), render.AllThemes(nil), "orca")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, "orca", m.(Model).Theme())

	m, _ = m.Update(key("t"))
	assert.Equal(t, "mono", m.(Model).Theme())
	assert.Contains(t, m.View(), "+ +12% vs last week")

	m, _ = m.Update(key("t"))
	assert.Equal(t, "default", m.(Model).Theme())
}

func TestModel_UnknownThemeStartsAtDefault(t *testing.T) {
	assert.Equal(t, "default", New(views(), render.AllThemes(nil), "neon").Theme())
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := New(views(), render.AllThemes(nil), "default").Update(k)
		require.NotNil(t, cmd, k.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), k.String())
	}
}

func TestModel_CustomThemes(t *testing.T) {
	custom := map[string]render.ThemeSpec{"neon": {Icons: &render.TrendIcons{Up: "▲"}}}
	var m tea.Model = New(views(), render.AllThemes(custom), "neon")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, "neon", m.(Model).Theme())
	assert.Contains(t, m.View(), "▲ +12% vs last week")
}

func TestModel_NoThemesFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "default", New(views(), nil, "").Theme())
}
