// Package config handles configuration loading and merging for metricard.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --format, --width, --locale, --strict, --debug)
//  2. Environment variables (METRICARD_THEME, METRICARD_DEBUG, NO_COLOR)
//  3. YAML config file (.metricard.yaml in the working directory or
//     $XDG_CONFIG_HOME/metricard/.metricard.yaml)
//  4. Hardcoded defaults
//
// # Environment Variables
//
//   - METRICARD_THEME: theme name (default, orca, mono)
//   - METRICARD_DEBUG: any non-empty value enables debug logging
//   - NO_COLOR: any non-empty value forces the mono theme
package config
