// Package deck loads a list of metric card props from YAML or JSON.
//
// A deck is either a mapping with a "cards" list or a bare list:
//
//	cards:
//	  - title: Active Users
//	    value: 1204
//	    change: "+12%"
//	    icon: users
//	    color: blue
//
// Scalars keep their source text, so "1204.50" stays "1204.50" on the card.
package deck

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/metricard/internal/detect"
	"github.com/dkoosis/metricard/pkg/card"
	"github.com/dkoosis/metricard/pkg/icon"
)

var (
	ErrEmptyInput    = errors.New("empty input")
	ErrUnknownFormat = errors.New("unrecognized input format (expected YAML or JSON deck)")
)

// Options control how scalar values are turned into card text.
type Options struct {
	// Locale, when set, groups integer and float values per that BCP 47
	// tag ("en" → 1,204). Empty keeps values verbatim.
	Locale string
	Log    *slog.Logger
}

type entry struct {
	Title  string    `yaml:"title"`
	Value  yaml.Node `yaml:"value"`
	Change string    `yaml:"change"`
	Icon   string    `yaml:"icon"`
	Color  string    `yaml:"color"`
}

type document struct {
	Cards []entry `yaml:"cards"`
}

// Load reads all of r and parses it as a deck.
func Load(r io.Reader, opts Options) ([]card.Props, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	return Parse(data, opts)
}

// Parse decodes a deck. JSON decks go through the YAML decoder too.
func Parse(data []byte, opts Options) ([]card.Props, error) {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyInput
	}
	format := detect.Sniff(data)
	if format == detect.Unknown {
		return nil, ErrUnknownFormat
	}
	log.Debug("decoding deck", "format", format)

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s deck: %w", format, err)
	}
	entries, err := decodeEntries(&root)
	if err != nil {
		return nil, fmt.Errorf("parsing %s deck: %w", format, err)
	}

	var printer *message.Printer
	if opts.Locale != "" {
		tag, err := language.Parse(opts.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", opts.Locale, err)
		}
		printer = message.NewPrinter(tag)
	}

	props := make([]card.Props, 0, len(entries))
	for i, e := range entries {
		value, err := scalarText(&e.Value, printer)
		if err != nil {
			return nil, fmt.Errorf("card %d (%q): %w", i+1, e.Title, err)
		}
		props = append(props, card.Props{
			Title:  e.Title,
			Value:  value,
			Change: e.Change,
			Icon:   resolveIcon(e.Icon, i, log),
			Color:  card.Color(e.Color),
		})
		if _, ok := card.ResolveColor(card.Color(e.Color)); !ok {
			log.Debug("card colour has no palette entry", "card", i+1, "color", e.Color)
		}
	}
	log.Debug("decoded deck", "cards", len(props))
	return props, nil
}

func decodeEntries(root *yaml.Node) ([]entry, error) {
	node := root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.SequenceNode:
		var entries []entry
		if err := node.Decode(&entries); err != nil {
			return nil, err
		}
		return entries, nil
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Cards, nil
	default:
		return nil, errors.New("deck must be a list of cards or a mapping with a cards list")
	}
}

// scalarText returns the value's source text. Numbers are grouped when a
// printer is given; everything else passes through untouched.
func scalarText(n *yaml.Node, printer *message.Printer) (string, error) {
	switch n.Kind {
	case 0:
		return "", nil
	case yaml.ScalarNode:
	default:
		return "", errors.New("value must be a scalar")
	}
	if n.Tag == "!!null" {
		return "", nil
	}
	if printer == nil {
		return n.Value, nil
	}
	switch n.Tag {
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return n.Value, nil
		}
		return printer.Sprintf("%d", i), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return n.Value, nil
		}
		return printer.Sprintf(fmt.Sprintf("%%.%df", decimals(n.Value)), f), nil
	default:
		return n.Value, nil
	}
}

// decimals counts digits after the decimal point in a plain float literal.
func decimals(s string) int {
	if strings.ContainsAny(s, "eE") {
		return 2
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(s) - dot - 1
}

func resolveIcon(name string, idx int, log *slog.Logger) icon.Icon {
	if name == "" {
		return icon.None
	}
	ic, ok := icon.Lookup(name)
	if !ok {
		log.Debug("unknown icon, drawing an empty badge", "card", idx+1, "icon", name)
		return icon.None
	}
	return ic
}
