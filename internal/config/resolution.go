package config

import "os"

// Flags holds the values of command-line flags and whether each was given.
type Flags struct {
	Theme  string
	Format string
	Width  int
	Locale string
	Strict bool
	Debug  bool

	ThemeSet  bool
	FormatSet bool
	WidthSet  bool
	LocaleSet bool
	StrictSet bool
	DebugSet  bool
}

// Resolved is the final configuration after applying all priority rules.
type Resolved struct {
	Theme  string
	Format string
	Width  int // 0 means "ask the terminal"
	Locale string
	Strict bool
	Debug  bool

	// Resolution metadata (for debugging)
	ThemeSource string // "cli", "no-color", "env", "file", "default"
}

// Resolve merges flags, environment and file config with CLI > env > file
// > defaults. NO_COLOR overrides every theme source except an explicit
// --theme flag.
func Resolve(file *FileConfig, flags Flags) Resolved {
	return resolve(file, flags, os.Getenv)
}

func resolve(file *FileConfig, flags Flags, getenv func(string) string) Resolved {
	if file == nil {
		file = &FileConfig{}
	}
	r := Resolved{
		Theme:       DefaultTheme,
		Format:      DefaultFormat,
		ThemeSource: "default",
	}

	if file.Theme != "" {
		r.Theme, r.ThemeSource = file.Theme, "file"
	}
	if v := getenv("METRICARD_THEME"); v != "" {
		r.Theme, r.ThemeSource = v, "env"
	}
	if getenv("NO_COLOR") != "" {
		r.Theme, r.ThemeSource = "mono", "no-color"
	}
	if flags.ThemeSet {
		r.Theme, r.ThemeSource = flags.Theme, "cli"
	}

	if file.Format != "" {
		r.Format = file.Format
	}
	if flags.FormatSet {
		r.Format = flags.Format
	}

	if file.Width > 0 {
		r.Width = file.Width
	}
	if flags.WidthSet {
		r.Width = flags.Width
	}

	r.Locale = file.Locale
	if flags.LocaleSet {
		r.Locale = flags.Locale
	}

	r.Strict = file.Strict
	if flags.StrictSet {
		r.Strict = flags.Strict
	}

	r.Debug = file.Debug || getenv("METRICARD_DEBUG") != ""
	if flags.DebugSet {
		r.Debug = flags.Debug
	}
	return r
}
