package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/metricard/pkg/render"
)

// FileName is the config file looked up locally and under the user config dir.
const FileName = ".metricard.yaml"

// Constants for default values.
const (
	DefaultTheme  = "default"
	DefaultFormat = "auto"
)

// FileConfig represents the contents of .metricard.yaml. Zero values mean
// "not set" so the resolver can tell them apart from explicit choices.
type FileConfig struct {
	Theme  string `yaml:"theme,omitempty"`
	Format string `yaml:"format,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Locale string `yaml:"locale,omitempty"`
	Debug  bool   `yaml:"debug,omitempty"`
	Strict bool   `yaml:"strict,omitempty"`

	// Themes adds named themes, or replaces built-in ones of the same name.
	Themes map[string]render.ThemeSpec `yaml:"themes,omitempty"`
}

// Load finds and parses the config file. When explicit is non-empty only
// that path is read and a missing file is an error. Otherwise a missing or
// unreadable file is logged and yields an empty FileConfig, with the path
// returned as "".
func Load(explicit string, log *slog.Logger) (*FileConfig, string, error) {
	if explicit != "" {
		cfg, err := readFile(explicit)
		if err != nil {
			return nil, "", err
		}
		log.Debug("loaded config", "path", explicit)
		return cfg, explicit, nil
	}

	path := getConfigPath(log)
	if path == "" {
		return &FileConfig{}, "", nil
	}
	cfg, err := readFile(path)
	if err != nil {
		log.Warn("ignoring config file, using defaults", "path", path, "err", err)
		return &FileConfig{}, "", nil
	}
	log.Debug("loaded config", "path", path)
	return cfg, path, nil
}

func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// getConfigPath determines the path to the configuration file.
// It checks the working directory first, then the user config dir.
func getConfigPath(log *slog.Logger) string {
	if _, err := os.Stat(FileName); err == nil {
		log.Debug("using local config file", "path", FileName)
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		log.Debug("user config dir unavailable", "dir", configHome, "err", err)
		return ""
	}

	xdgPath := filepath.Join(configHome, "metricard", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		log.Debug("using user config file", "path", xdgPath)
		return xdgPath
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Warn("cannot stat user config file", "path", xdgPath, "err", err)
	}
	log.Debug("no config file found, using defaults")
	return ""
}
