// Package card builds the view of a single dashboard metric card: a title,
// a value, a change line and an icon on a coloured badge.
//
// Build is a pure function of its Props. It holds no state, does no I/O and
// never fails; inputs it can't style (an unknown colour, an unsigned change)
// come back unstyled or neutral rather than as errors. Renderers in
// pkg/render turn the resulting View into output.
package card

import (
	"fmt"

	"github.com/dkoosis/metricard/pkg/icon"
)

// ChangeSuffix always follows the change text on the change line.
const ChangeSuffix = "vs last week"

// Props are the inputs for one render pass. Build does not keep or mutate them.
type Props struct {
	Title string
	// Value is shown verbatim. Strings pass through; numbers and other
	// values use their default fmt form.
	Value  any
	Change string
	Icon   icon.Icon
	Color  Color
}

// View is the laid-out card: title and value on the left, the badge on the
// right, the change line under the value.
type View struct {
	Title  string     `json:"title"`
	Value  string     `json:"value"`
	Badge  Badge      `json:"badge"`
	Change ChangeLine `json:"change"`
}

// Badge is the coloured square holding the icon. Resolved is false when
// the card's colour had no palette entry; Swatch is then empty.
type Badge struct {
	Icon     icon.Icon `json:"icon"`
	Color    Color     `json:"color"`
	Swatch   Swatch    `json:"swatch"`
	Resolved bool      `json:"resolved"`
}

// ChangeLine is the delta shown beneath the value.
type ChangeLine struct {
	Delta string `json:"delta"`
	Text  string `json:"text"`
	Trend Trend  `json:"trend"`
}

// Build maps props onto a card view.
func Build(p Props) View {
	sw, ok := ResolveColor(p.Color)
	return View{
		Title: p.Title,
		Value: FormatValue(p.Value),
		Badge: Badge{
			Icon:     p.Icon,
			Color:    p.Color,
			Swatch:   sw,
			Resolved: ok,
		},
		Change: ChangeLine{
			Delta: p.Change,
			Text:  ChangeText(p.Change),
			Trend: ClassifyChange(p.Change),
		},
	}
}

// ChangeText joins the delta and the fixed comparison suffix.
func ChangeText(change string) string {
	return change + " " + ChangeSuffix
}

// FormatValue renders a value the way the card displays it.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
