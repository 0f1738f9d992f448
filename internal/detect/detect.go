// Package detect sniffs input to determine the card deck format.
package detect

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown Format = iota
	JSON           // JSON document (object or array)
	YAML           // YAML mapping or sequence
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// Sniff examines the input to determine its format. JSON is checked first
// since every JSON document is also YAML. Bare YAML scalars don't count:
// a deck is always a mapping or a sequence.
func Sniff(data []byte) Format {
	data = bytes.TrimPrefix(data, bom)
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Unknown
	}

	if (data[0] == '{' || data[0] == '[') && json.Valid(data) {
		return JSON
	}

	var probe any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Unknown
	}
	switch probe.(type) {
	case map[string]any, []any:
		return YAML
	default:
		return Unknown
	}
}
