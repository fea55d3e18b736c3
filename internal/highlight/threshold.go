package highlight

import (
	"regexp"
	"strconv"
	"strings"
)

// ThresholdHighlighter extracts a number with a unit, converts it to a base
// unit and picks a severity style by comparing it with cutoffs read from the
// Config at match time.
type ThresholdHighlighter struct {
	descriptor
	re       *regexp.Regexp
	value    int
	unit     int
	scale    func(unit string) (float64, bool)
	classify func(v float64, cfg *Config) string
}

// FindMatches implements Highlighter.
func (h *ThresholdHighlighter) FindMatches(text string, cfg *Config) []Match {
	all := h.re.FindAllStringSubmatchIndex(text, -1)
	if len(all) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(all))
	for _, loc := range all {
		raw := text[loc[2*h.value]:loc[2*h.value+1]]
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		factor, ok := h.scale(text[loc[2*h.unit]:loc[2*h.unit+1]])
		if !ok {
			continue
		}
		matches = append(matches, h.match(loc[0], loc[1], h.classify(n*factor, cfg)))
	}
	return matches
}

// Pattern returns the source expression.
func (h *ThresholdHighlighter) Pattern() string {
	return h.re.String()
}

func newThreshold(d descriptor, pattern string, scale func(string) (float64, bool), classify func(float64, *Config) string) *ThresholdHighlighter {
	re := regexp.MustCompile(pattern)
	return &ThresholdHighlighter{
		descriptor: d,
		re:         re,
		value:      re.SubexpIndex("value"),
		unit:       re.SubexpIndex("unit"),
		scale:      scale,
		classify:   classify,
	}
}

// NewDuration returns a highlighter for durations such as "650.0 ms" or
// "1.2 s", styled by the duration cutoffs (milliseconds).
func NewDuration(name string, priority int) *ThresholdHighlighter {
	return newThreshold(
		descriptor{
			name:        name,
			category:    CategoryPerformance,
			priority:    priority,
			description: "Durations colored by slowness thresholds",
		},
		`\b(?P<value>\d+(?:\.\d+)?)\s?(?P<unit>ms|us|s|sec|secs|min|h)\b`,
		durationScale,
		DurationStyle,
	)
}

// NewSize returns a highlighter for sizes such as "512 kB" or "3 GB", styled
// by the size cutoffs (bytes).
func NewSize(name string, priority int) *ThresholdHighlighter {
	return newThreshold(
		descriptor{
			name:        name,
			category:    CategoryPerformance,
			priority:    priority,
			description: "Sizes colored by magnitude thresholds",
		},
		`\b(?P<value>\d+(?:\.\d+)?)\s?(?P<unit>(?i:bytes|[kmgt]i?b)|B)\b`,
		sizeScale,
		SizeStyle,
	)
}

// DurationStyle classifies a duration in milliseconds.
func DurationStyle(ms float64, cfg *Config) string {
	switch {
	case ms < cfg.Threshold(DurationWarning):
		return StyleDurationFast
	case ms < cfg.Threshold(DurationSlow):
		return StyleDurationWarning
	case ms < cfg.Threshold(DurationCritical):
		return StyleDurationSlow
	default:
		return StyleDurationCritical
	}
}

// SizeStyle classifies a size in bytes.
func SizeStyle(bytes float64, cfg *Config) string {
	switch {
	case bytes < cfg.Threshold(SizeWarning):
		return StyleSizeNormal
	case bytes < cfg.Threshold(SizeCritical):
		return StyleSizeLarge
	default:
		return StyleSizeHuge
	}
}

func durationScale(unit string) (float64, bool) {
	switch unit {
	case "us":
		return 0.001, true
	case "ms":
		return 1, true
	case "s", "sec", "secs":
		return 1000, true
	case "min":
		return 60 * 1000, true
	case "h":
		return 60 * 60 * 1000, true
	}
	return 0, false
}

func sizeScale(unit string) (float64, bool) {
	if unit == "B" {
		return 1, true
	}
	switch strings.ToLower(unit) {
	case "bytes":
		return 1, true
	case "kb", "kib":
		return 1 << 10, true
	case "mb", "mib":
		return 1 << 20, true
	case "gb", "gib":
		return 1 << 30, true
	case "tb", "tib":
		return 1 << 40, true
	}
	return 0, false
}
