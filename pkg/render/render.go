// Package render provides output renderers for metric card views.
package render

import "github.com/dkoosis/metricard/pkg/card"

// Renderer converts card views to formatted output.
type Renderer interface {
	Render(views []card.View) string
}
