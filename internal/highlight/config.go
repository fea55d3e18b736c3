package highlight

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// ThresholdKind names a tunable severity cutoff.
type ThresholdKind string

const (
	DurationWarning  ThresholdKind = "duration.warning"  // ms
	DurationSlow     ThresholdKind = "duration.slow"     // ms
	DurationCritical ThresholdKind = "duration.critical" // ms
	SizeWarning      ThresholdKind = "size.warning"      // bytes
	SizeCritical     ThresholdKind = "size.critical"     // bytes
)

// defaultThresholds are the cutoffs used until changed at runtime.
var defaultThresholds = map[ThresholdKind]float64{
	DurationWarning:  100,
	DurationSlow:     500,
	DurationCritical: 5000,
	SizeWarning:      100 << 20,
	SizeCritical:     1 << 30,
}

// thresholdOrder lists each group of cutoffs from lowest to highest.
var thresholdOrder = [][]ThresholdKind{
	{DurationWarning, DurationSlow, DurationCritical},
	{SizeWarning, SizeCritical},
}

// ThresholdKinds returns every known threshold kind.
func ThresholdKinds() []ThresholdKind {
	var kinds []ThresholdKind
	for _, group := range thresholdOrder {
		kinds = append(kinds, group...)
	}
	return kinds
}

// DefaultThreshold returns the default value for kind.
func DefaultThreshold(kind ThresholdKind) (float64, bool) {
	v, ok := defaultThresholds[kind]
	return v, ok
}

// Config is the runtime highlighting state read by highlighters: which
// highlighters are disabled and the severity cutoffs. A nil *Config behaves
// like DefaultConfig.
type Config struct {
	disabled   map[string]struct{}
	thresholds map[ThresholdKind]float64
}

// DefaultConfig returns a config with everything enabled and default cutoffs.
func DefaultConfig() *Config {
	return &Config{
		disabled:   make(map[string]struct{}),
		thresholds: maps.Clone(defaultThresholds),
	}
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}
	return &Config{
		disabled:   maps.Clone(c.disabled),
		thresholds: maps.Clone(c.thresholds),
	}
}

// IsEnabled reports whether the highlighter name is enabled.
func (c *Config) IsEnabled(name string) bool {
	if c == nil {
		return true
	}
	_, off := c.disabled[name]
	return !off
}

// Disabled returns the disabled highlighter names, sorted.
func (c *Config) Disabled() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.disabled))
}

func (c *Config) setEnabled(name string, enabled bool) {
	if enabled {
		delete(c.disabled, name)
	} else {
		c.disabled[name] = struct{}{}
	}
}

// Threshold returns the current cutoff for kind.
func (c *Config) Threshold(kind ThresholdKind) float64 {
	if c != nil {
		if v, ok := c.thresholds[kind]; ok {
			return v
		}
	}
	return defaultThresholds[kind]
}

// SetThreshold changes one cutoff. Values must be positive and keep each
// group strictly ascending (warning < slow < critical).
func (c *Config) SetThreshold(kind ThresholdKind, value float64) error {
	if _, ok := defaultThresholds[kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownThreshold, kind)
	}
	if err := checkThresholdValue(kind, value); err != nil {
		return err
	}

	next := maps.Clone(c.thresholds)
	next[kind] = value
	if err := validateThresholds(next); err != nil {
		return err
	}
	c.thresholds = next
	return nil
}

// checkThresholdValue rejects values that cannot order against others.
func checkThresholdValue(kind ThresholdKind, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidThreshold, kind, value)
	}
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidThreshold, kind, value)
	}
	return nil
}

func validateThresholds(values map[ThresholdKind]float64) error {
	for _, group := range thresholdOrder {
		for i := 1; i < len(group); i++ {
			lo, hi := values[group[i-1]], values[group[i]]
			if lo >= hi {
				return fmt.Errorf("%w: %s (%v) must be below %s (%v)",
					ErrInvalidThreshold, group[i-1], lo, group[i], hi)
			}
		}
	}
	return nil
}
