package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/metricard/pkg/card"
)

const (
	minLeftWidth = 16
	cardGap      = 1
	columnGap    = 2
)

// Terminal renders card views as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render lays cards out left to right, starting a new row whenever the next
// card would run past the renderer's width.
func (t *Terminal) Render(views []card.View) string {
	if len(views) == 0 {
		return ""
	}
	var rows []string
	var row []string
	rowWidth := 0
	for _, v := range views {
		c := t.RenderCard(v)
		w := lipgloss.Width(c)
		if len(row) > 0 && rowWidth+cardGap+w > t.width {
			rows = append(rows, t.joinRow(row))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth += cardGap
		}
		row = append(row, c)
		rowWidth += w
	}
	rows = append(rows, t.joinRow(row))
	return strings.Join(rows, "\n") + "\n"
}

func (t *Terminal) joinRow(cards []string) string {
	gap := strings.Repeat(" ", cardGap)
	parts := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderCard draws one framed card: title, value and change line stacked on
// the left, the icon badge on the right.
func (t *Terminal) RenderCard(v card.View) string {
	title := t.theme.Title.Render(v.Title)
	value := t.theme.Value.Render(v.Value)
	change := t.renderChange(v.Change)

	left := lipgloss.JoinVertical(lipgloss.Left, title, value, change)
	leftWidth := lipgloss.Width(left)
	if leftWidth < minLeftWidth {
		leftWidth = minLeftWidth
	}
	left = lipgloss.NewStyle().Width(leftWidth).Render(left)

	badge := t.badgeStyle(v.Badge).Render(v.Badge.Icon.Render(t.theme.ASCII))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", columnGap), badge)
	return t.theme.Frame.Render(body)
}

func (t *Terminal) renderChange(c card.ChangeLine) string {
	text := c.Text
	if icon := t.theme.trendIcon(c.Trend); icon != "" {
		text = icon + " " + text
	}
	return t.theme.trendStyle(c.Trend).Render(text)
}

// badgeStyle applies the card's swatch. Unresolved colours and mono themes
// get padding only.
func (t *Terminal) badgeStyle(b card.Badge) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if t.theme.Mono || !b.Resolved {
		return st
	}
	return st.
		Bold(true).
		Background(lipgloss.Color(b.Swatch.Background)).
		Foreground(lipgloss.Color(b.Swatch.Foreground))
}
