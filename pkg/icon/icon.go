// Package icon is the glyph set metric cards draw on their badges.
// An Icon is a reference to something renderable, not data: cards never
// inspect it beyond handing it to a renderer.
package icon

import "sort"

// Icon is a named glyph with an ASCII stand-in for terminals that can't
// draw the Unicode form.
type Icon struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	ASCII string `json:"ascii"`
}

// None renders as an empty badge.
var None = Icon{Name: "none", Glyph: " ", ASCII: " "}

// IsZero reports whether ic carries no glyph at all.
func (ic Icon) IsZero() bool { return ic.Glyph == "" && ic.ASCII == "" }

// Render returns the glyph, or its ASCII form when ascii is set.
func (ic Icon) Render(ascii bool) string {
	if ascii && ic.ASCII != "" {
		return ic.ASCII
	}
	if ic.Glyph == "" {
		return ic.ASCII
	}
	return ic.Glyph
}

var set = map[string]Icon{
	"users":    {Name: "users", Glyph: "👥", ASCII: "U"},
	"user":     {Name: "user", Glyph: "👤", ASCII: "u"},
	"dollar":   {Name: "dollar", Glyph: "$", ASCII: "$"},
	"cart":     {Name: "cart", Glyph: "🛒", ASCII: "C"},
	"activity": {Name: "activity", Glyph: "〜", ASCII: "~"},
	"chart":    {Name: "chart", Glyph: "📈", ASCII: "^"},
	"clock":    {Name: "clock", Glyph: "⏱", ASCII: "T"},
	"alert":    {Name: "alert", Glyph: "⚠", ASCII: "!"},
	"check":    {Name: "check", Glyph: "✓", ASCII: "+"},
	"server":   {Name: "server", Glyph: "▤", ASCII: "#"},
	"mail":     {Name: "mail", Glyph: "✉", ASCII: "@"},
	"bolt":     {Name: "bolt", Glyph: "⚡", ASCII: "*"},
}

// Lookup returns the icon registered under name.
func Lookup(name string) (Icon, bool) {
	ic, ok := set[name]
	return ic, ok
}

// Names lists every registered icon name in sorted order.
func Names() []string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
