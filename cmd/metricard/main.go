// metricard renders dashboard metric cards in the terminal.
//
// Usage:
//
//	metricard cards.yaml
//	cat cards.json | metricard --format plain
//	metricard --interactive cards.yaml
//	metricard icons
//
// A deck is YAML or JSON: a list of cards, or a mapping with a "cards" list.
// Each card has a title, a value, a change string, an icon name and a
// color (red, blue, green or purple).
//
// Output modes (auto-detected):
//
//	terminal  — styled cards (default when TTY)
//	plain     — aligned plain text (default when piped)
//	json      — structured JSON for automation
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/dkoosis/metricard/internal/config"
	"github.com/dkoosis/metricard/internal/deck"
	"github.com/dkoosis/metricard/internal/logging"
	"github.com/dkoosis/metricard/internal/version"
	"github.com/dkoosis/metricard/internal/viewer"
	"github.com/dkoosis/metricard/pkg/card"
	"github.com/dkoosis/metricard/pkg/icon"
	"github.com/dkoosis/metricard/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Check for subcommands before flag parsing
	if len(args) > 0 {
		switch args[0] {
		case "icons":
			return runIcons(stdout)
		case "version":
			fmt.Fprintln(stdout, version.String())
			return 0
		}
	}

	fs := flag.NewFlagSet("metricard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", config.DefaultFormat, "Output format: auto, terminal, plain, json")
	themeFlag := fs.String("theme", config.DefaultTheme, "Theme: default, orca, mono")
	widthFlag := fs.Int("width", 0, "Layout width in cells (0 = terminal width)")
	localeFlag := fs.String("locale", "", "Group numeric values for this locale (e.g. en, de)")
	strictFlag := fs.Bool("strict", false, "Exit 1 when a card's color has no palette entry")
	debugFlag := fs.Bool("debug", false, "Enable debug logging")
	interactiveFlag := fs.Bool("interactive", false, "Open the interactive viewer")
	configFlag := fs.String("config", "", "Path to config file (default .metricard.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "metricard: expected at most one deck file, got %d\n", fs.NArg())
		return 2
	}

	flags := config.Flags{
		Theme: *themeFlag, Format: *formatFlag, Width: *widthFlag,
		Locale: *localeFlag, Strict: *strictFlag, Debug: *debugFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			flags.ThemeSet = true
		case "format":
			flags.FormatSet = true
		case "width":
			flags.WidthSet = true
		case "locale":
			flags.LocaleSet = true
		case "strict":
			flags.StrictSet = true
		case "debug":
			flags.DebugSet = true
		}
	})

	log := logging.New(stderr, *debugFlag)
	fileCfg, cfgPath, err := config.Load(*configFlag, log)
	if err != nil {
		fmt.Fprintf(stderr, "metricard: %v\n", err)
		return 2
	}
	res := config.Resolve(fileCfg, flags)
	log = logging.New(stderr, res.Debug)
	log.Debug("resolved config", "config", cfgPath, "theme", res.Theme, "theme_source", res.ThemeSource,
		"format", res.Format, "width", res.Width, "locale", res.Locale, "strict", res.Strict)

	views, code := loadViews(fs.Arg(0), stdin, res, log, stderr)
	if code >= 0 {
		return code
	}

	if *interactiveFlag {
		return runInteractive(views, render.AllThemes(fileCfg.Themes), res.Theme, stdout, stderr)
	}

	mode := resolveFormat(res.Format, stdout)
	validFormats := map[string]bool{"terminal": true, "plain": true, "json": true}
	if !validFormats[mode] {
		fmt.Fprintf(stderr, "metricard: unknown format %q (expected auto, terminal, plain, json)\n", res.Format)
		return 2
	}

	width := res.Width
	if width <= 0 {
		width, _ = termSize(stdout)
	}
	theme := render.ResolveTheme(res.Theme, fileCfg.Themes)
	fmt.Fprint(stdout, selectRenderer(mode, theme, width).Render(views))
	return exitCode(views, res.Strict, stderr)
}

// loadViews reads the deck from path (or stdin for "" and "-") and builds
// every card. Returns (views, -1) on success; (nil, exitCode) on error.
func loadViews(path string, stdin io.Reader, res config.Resolved, log *slog.Logger, stderr io.Writer) ([]card.View, int) {
	in := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "metricard: %v\n", err)
			return nil, 2
		}
		defer f.Close()
		in = f
	}

	props, err := deck.Load(in, deck.Options{Locale: res.Locale, Log: log})
	switch {
	case errors.Is(err, deck.ErrEmptyInput):
		fmt.Fprintf(stderr, "metricard: no input\n")
		return nil, 2
	case err != nil:
		fmt.Fprintf(stderr, "metricard: %v\n", err)
		return nil, 2
	}

	views := make([]card.View, 0, len(props))
	for _, p := range props {
		views = append(views, card.Build(p))
	}
	return views, -1
}

func runInteractive(views []card.View, themes []render.Theme, start string, stdout, stderr io.Writer) int {
	if !isTTYWriter(stdout) {
		fmt.Fprintf(stderr, "metricard: --interactive needs a terminal on stdout\n")
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := viewer.Run(ctx, views, themes, start); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "metricard: viewer: %v\n", err)
		return 1
	}
	return 0
}

func runIcons(stdout io.Writer) int {
	for _, name := range icon.Names() {
		ic, _ := icon.Lookup(name)
		fmt.Fprintf(stdout, "%-10s %s  %s\n", name, ic.Glyph, ic.ASCII)
	}
	return 0
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}

func selectRenderer(mode string, theme render.Theme, width int) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON()
	case "plain":
		return render.NewPlain()
	default:
		return render.NewTerminal(theme, width)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = plain
	if isTTYWriter(w) {
		return "terminal"
	}
	return "plain"
}

// exitCode returns 1 in strict mode when any card's colour failed to
// resolve, 0 otherwise. Outside strict mode unresolved colours just render
// unstyled.
func exitCode(views []card.View, strict bool, stderr io.Writer) int {
	if !strict {
		return 0
	}
	var bad []string
	for i, v := range views {
		if !v.Badge.Resolved {
			bad = append(bad, fmt.Sprintf("card %d (%q): color %q", i+1, v.Title, v.Badge.Color))
		}
	}
	if len(bad) == 0 {
		return 0
	}
	fmt.Fprintf(stderr, "metricard: unresolved colors:\n  %s\n", strings.Join(bad, "\n  "))
	return 1
}
