package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/metricard/pkg/card"
)

// Plain renders card views as terse text for pipes and AI consumption.
// Zero ANSI codes; one aligned row per card under a CARDS summary line.
type Plain struct{}

// NewPlain creates a plain-text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

var plainHeader = []string{"TITLE", "VALUE", "CHANGE", "TREND", "COLOR", "ICON"}

// Render formats all views as an aligned table.
func (p *Plain) Render(views []card.View) string {
	if len(views) == 0 {
		return "CARDS: 0\n"
	}

	rows := make([][]string, 0, len(views)+1)
	rows = append(rows, plainHeader)
	for _, v := range views {
		rows = append(rows, []string{
			v.Title,
			v.Value,
			v.Change.Text,
			string(v.Change.Trend),
			colorCell(v.Badge),
			iconCell(v.Badge),
		})
	}

	widths := make([]int, len(plainHeader))
	for _, r := range rows {
		for i, cell := range r {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(plainScope(views) + "\n")
	for _, r := range rows {
		for i, cell := range r {
			if i == len(r)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// plainScope summarises the trend mix, e.g. "CARDS: 3 (2 up, 1 down)".
func plainScope(views []card.View) string {
	var up, down, flat int
	for _, v := range views {
		switch v.Change.Trend {
		case card.Positive:
			up++
		case card.Negative:
			down++
		default:
			flat++
		}
	}
	var parts []string
	if up > 0 {
		parts = append(parts, fmt.Sprintf("%d up", up))
	}
	if down > 0 {
		parts = append(parts, fmt.Sprintf("%d down", down))
	}
	if flat > 0 {
		parts = append(parts, fmt.Sprintf("%d flat", flat))
	}
	return fmt.Sprintf("CARDS: %d (%s)", len(views), strings.Join(parts, ", "))
}

func colorCell(b card.Badge) string {
	if !b.Resolved {
		if b.Color == "" {
			return "-"
		}
		return string(b.Color) + "?"
	}
	return string(b.Color)
}

func iconCell(b card.Badge) string {
	if b.Icon.Name == "" {
		return "-"
	}
	return b.Icon.Name
}
