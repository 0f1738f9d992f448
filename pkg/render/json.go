package render

import (
	"encoding/json"

	"github.com/dkoosis/metricard/pkg/card"
)

// JSON renders card views as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string      `json:"version"`
	Cards   []card.View `json:"cards"`
}

// Render formats all views as JSON.
func (j *JSON) Render(views []card.View) string {
	out := jsonOutput{
		Version: "1",
		Cards:   make([]card.View, 0, len(views)),
	}
	out.Cards = append(out.Cards, views...)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
