// Package config provides configuration types, defaults, and persistence for pgtail.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/zjrosen/pgtail/internal/highlight"
	"github.com/zjrosen/pgtail/internal/log"
	"github.com/zjrosen/pgtail/internal/theme"
)

// Config holds all configuration options for pgtail.
type Config struct {
	Theme        ThemeConfig        `mapstructure:"theme"`
	Display      DisplayConfig      `mapstructure:"display"`
	Tail         TailConfig         `mapstructure:"tail"`
	Highlighting highlight.Settings `mapstructure:"highlighting"`
}

// ThemeConfig selects a preset and overrides style colors.
type ThemeConfig struct {
	// Preset is one of the names printed by 'pgtail themes'.
	Preset string `mapstructure:"preset"`

	// Colors overrides the foreground of individual style keys. Both nested
	// YAML and quoted dot notation are accepted:
	//   colors:
	//     duration:
	//       critical: "#FF0000"
	//     "sql.keyword": "#54A0FF"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns Colors with nested maps flattened to dotted keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Resolve returns the theme package's view of the configuration.
func (t ThemeConfig) Resolve() theme.Config {
	return theme.Config{Preset: t.Preset, Colors: t.FlattenedColors()}
}

// DisplayConfig controls how rendered lines are written.
type DisplayConfig struct {
	StripANSI bool `mapstructure:"strip_ansi"`
	MaxWidth  int  `mapstructure:"max_width"` // 0 disables truncation
}

// TailConfig controls the initial read of a log file.
type TailConfig struct {
	Lines int `mapstructure:"lines"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Display: DisplayConfig{
			StripANSI: true,
		},
		Tail: TailConfig{
			Lines: 200,
		},
		Highlighting: highlight.DefaultSettings(),
	}
}

// Validate checks the whole configuration. Highlighting settings are
// validated by importing them into a scratch registry.
func Validate(cfg Config) error {
	var errs []error
	if cfg.Theme.Preset != "" {
		if _, ok := theme.Presets[cfg.Theme.Preset]; !ok {
			errs = append(errs, fmt.Errorf("theme.preset: unknown preset %q", cfg.Theme.Preset))
		}
	}
	if err := theme.ValidateColors(cfg.Theme.FlattenedColors()); err != nil {
		errs = append(errs, fmt.Errorf("theme.colors: %w", err))
	}
	if cfg.Display.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("display.max_width: must not be negative, got %d", cfg.Display.MaxWidth))
	}
	if cfg.Tail.Lines < 0 {
		errs = append(errs, fmt.Errorf("tail.lines: must not be negative, got %d", cfg.Tail.Lines))
	}
	if err := ValidateHighlighting(cfg.Highlighting); err != nil {
		errs = append(errs, fmt.Errorf("highlighting: %w", err))
	}
	return errors.Join(errs...)
}

// ValidateHighlighting reports whether s would be accepted by Registry.Import.
func ValidateHighlighting(s highlight.Settings) error {
	return highlight.NewRegistry().Import(s)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# pgtail configuration

# Theme configuration
theme:
  # Built-in presets (run 'pgtail themes' to preview):
  #   default, dracula, nord, catppuccin-mocha, mono
  preset: default
  #
  # Override the foreground of any style key. Keys are dotted; a family key
  # such as "duration" applies to every member without its own entry.
  # colors:
  #   "duration.critical": "#FF0000"
  #   "sql.keyword": "#54A0FF"

display:
  strip_ansi: true   # remove escape sequences already present in log lines
  max_width: 0       # truncate rendered lines to this many cells (0 = off)

tail:
  lines: 200         # lines shown before following a file

# Semantic highlighting
# Run 'pgtail highlighters list' to see every highlighter and its priority.
highlighting:
  # Highlighters to turn off, by name:
  disabled: []
  #   - misc.number
  #   - sql.keyword

  # Severity cutoffs for durations (milliseconds) and sizes (bytes).
  thresholds:
    duration:
      warning_ms: 100
      slow_ms: 500
      critical_ms: 5000
    size:
      warning_bytes: 104857600     # 100 MiB
      critical_bytes: 1073741824   # 1 GiB

  # User-defined highlighters. Patterns accept lookaround and
  # backreferences. Lower priority runs first; built-ins use 100-1099.
  custom: []
  #   - name: tenant
  #     pattern: 'tenant=\w+'
  #     style: custom.tenant
  #     priority: 1100
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(fs afero.Fs, configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := afero.WriteFile(fs, configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
