// Package viewer shows a rendered card deck in an interactive terminal pane.
package viewer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/metricard/pkg/card"
	"github.com/dkoosis/metricard/pkg/render"
)

// header and status bar each take one line.
const chromeHeight = 2

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Run launches the viewer and blocks until the user quits or ctx ends.
func Run(ctx context.Context, views []card.View, themes []render.Theme, start string) error {
	program := tea.NewProgram(New(views, themes, start), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model for the viewer.
type Model struct {
	views    []card.View
	themes   []render.Theme
	themeIdx int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// New builds a viewer over views. The t key cycles through themes,
// starting from the one named start (or the first).
func New(views []card.View, themes []render.Theme, start string) Model {
	if len(themes) == 0 {
		themes = []render.Theme{render.DefaultTheme()}
	}
	idx := 0
	for i, th := range themes {
		if th.Name == start {
			idx = i
		}
	}
	return Model{views: views, themes: themes, themeIdx: idx, viewport: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(m.themes)
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.ready = true
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the deck at the current width and theme.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	r := render.NewTerminal(m.themes[m.themeIdx], m.width)
	m.viewport.SetContent(r.Render(m.views))
}

// Theme returns the active theme name.
func (m Model) Theme() string { return m.themes[m.themeIdx].Name }

func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	header := headerStyle.Render(fmt.Sprintf("metricard · %d cards", len(m.views)))
	status := statusStyle.Render(fmt.Sprintf("theme: %s · t: next theme · ↑/↓: scroll · q: quit · %3.f%%",
		m.Theme(), m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), status)
}
