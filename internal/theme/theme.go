// Package theme maps highlight style keys to lipgloss styles.
//
// Keys are dotted ("duration.slow"). Lookup falls back one segment at a time,
// so a theme can color a whole family with "duration" and refine members
// individually. A key with no entry at any level renders unstyled.
package theme

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Spec describes how one style key renders. Colors are hex strings; an empty
// color leaves the terminal default in place.
type Spec struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
	Faint      bool
}

func (s Spec) style() lipgloss.Style {
	st := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	return st
}

// Config selects a preset and overrides individual foreground colors.
type Config struct {
	Preset string
	Colors map[string]string
}

// Theme is immutable once built and safe for concurrent use.
type Theme struct {
	name   string
	specs  map[string]Spec
	styles map[string]lipgloss.Style
}

// New layers the default preset, the selected preset, and the color overrides.
func New(cfg Config) (*Theme, error) {
	specs := maps.Clone(DefaultPreset.Specs)
	name := "default"

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		if preset.Replace {
			specs = maps.Clone(preset.Specs)
		} else {
			maps.Copy(specs, preset.Specs)
		}
		name = preset.Name
	}

	for key, value := range cfg.Colors {
		if !isValidKey(key) {
			return nil, fmt.Errorf("invalid style key: %q", key)
		}
		if !isValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		spec := specs[key]
		spec.Foreground = value
		specs[key] = spec
	}

	t := &Theme{name: name, specs: specs, styles: make(map[string]lipgloss.Style, len(specs))}
	for key, spec := range specs {
		t.styles[key] = spec.style()
	}
	return t, nil
}

// Default returns the default preset with no overrides.
func Default() *Theme {
	t, _ := New(Config{})
	return t
}

// Name returns the preset the theme was built from.
func (t *Theme) Name() string {
	return t.name
}

// Style returns the style for key, walking up the dotted hierarchy.
func (t *Theme) Style(key string) lipgloss.Style {
	if t != nil {
		for k := key; k != ""; k = parent(k) {
			if st, ok := t.styles[k]; ok {
				return st
			}
		}
	}
	return lipgloss.NewStyle()
}

// Spec returns the resolved spec for key and whether any level defined one.
func (t *Theme) Spec(key string) (Spec, bool) {
	if t == nil {
		return Spec{}, false
	}
	for k := key; k != ""; k = parent(k) {
		if spec, ok := t.specs[k]; ok {
			return spec, true
		}
	}
	return Spec{}, false
}

// Keys returns the keys the theme defines directly, sorted.
func (t *Theme) Keys() []string {
	return slices.Sorted(maps.Keys(t.specs))
}

func parent(key string) string {
	i := strings.LastIndexByte(key, '.')
	if i < 0 {
		return ""
	}
	return key[:i]
}

func isValidKey(key string) bool {
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return false
	}
	return !strings.ContainsAny(key, " \t\r\n")
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}

// ValidateColors reports the first invalid override without building a theme.
func ValidateColors(colors map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(colors)) {
		if !isValidKey(key) {
			return fmt.Errorf("invalid style key: %q", key)
		}
		if !isValidHexColor(colors[key]) {
			return fmt.Errorf("invalid hex color for %s: %s", key, colors[key])
		}
	}
	return nil
}
