package highlight

import (
	"regexp"
)

// PatternHighlighter styles every match of one regular expression with a
// single style key.
type PatternHighlighter struct {
	descriptor
	re    *regexp.Regexp
	style string
}

// NewPattern compiles pattern into a PatternHighlighter. It panics on an
// invalid pattern and is meant for built-in definitions.
func NewPattern(name string, category Category, priority int, description, pattern, style string) *PatternHighlighter {
	return &PatternHighlighter{
		descriptor: descriptor{name: name, category: category, priority: priority, description: description},
		re:         regexp.MustCompile(pattern),
		style:      style,
	}
}

// Pattern returns the source expression.
func (h *PatternHighlighter) Pattern() string {
	return h.re.String()
}

// FindMatches implements Highlighter.
func (h *PatternHighlighter) FindMatches(text string, _ *Config) []Match {
	locs := h.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		if loc[1] > loc[0] {
			matches = append(matches, h.match(loc[0], loc[1], h.style))
		}
	}
	return matches
}

// GroupedHighlighter styles the named capture groups of each match
// independently. Groups without a style, and text between groups, are left
// unclaimed.
type GroupedHighlighter struct {
	descriptor
	re     *regexp.Regexp
	styles []string // by submatch index; "" for unstyled groups
}

// NewGrouped compiles pattern and maps its named groups to style keys. It
// panics on an invalid pattern or a style for a group the pattern lacks.
func NewGrouped(name string, category Category, priority int, description, pattern string, groups map[string]string) *GroupedHighlighter {
	re := regexp.MustCompile(pattern)
	styles := make([]string, re.NumSubexp()+1)
	for group, style := range groups {
		idx := re.SubexpIndex(group)
		if idx < 0 {
			panic("highlight: pattern for " + name + " has no group " + group)
		}
		styles[idx] = style
	}
	return &GroupedHighlighter{
		descriptor: descriptor{name: name, category: category, priority: priority, description: description},
		re:         re,
		styles:     styles,
	}
}

// Pattern returns the source expression.
func (h *GroupedHighlighter) Pattern() string {
	return h.re.String()
}

// FindMatches implements Highlighter.
func (h *GroupedHighlighter) FindMatches(text string, _ *Config) []Match {
	all := h.re.FindAllStringSubmatchIndex(text, -1)
	if len(all) == 0 {
		return nil
	}
	var matches []Match
	for _, loc := range all {
		first := len(matches)
		for g := 1; g < len(h.styles); g++ {
			start, end := loc[2*g], loc[2*g+1]
			if h.styles[g] == "" || start < 0 || end <= start {
				continue
			}
			matches = append(matches, h.match(start, end, h.styles[g]))
		}
		sortByStart(matches[first:])
	}
	return matches
}
