package highlight

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// DefaultCustomPriority is used for user-defined highlighters when the
// caller does not choose one.
const DefaultCustomPriority = 1100

// customMatchTimeout bounds one evaluation of a user pattern.
const customMatchTimeout = 50 * time.Millisecond

// CustomDefinition is a user-supplied highlighter.
type CustomDefinition struct {
	Name     string `mapstructure:"name" yaml:"name" toml:"name"`
	Pattern  string `mapstructure:"pattern" yaml:"pattern" toml:"pattern"`
	Style    string `mapstructure:"style" yaml:"style,omitempty" toml:"style,omitempty"`
	Priority int    `mapstructure:"priority" yaml:"priority" toml:"priority"`
}

// CustomHighlighter runs a user pattern. Patterns use .NET/Perl-style syntax
// (lookaround and backreferences are allowed) and are evaluated with a
// timeout; a timed out evaluation keeps the matches found so far.
type CustomHighlighter struct {
	descriptor
	def CustomDefinition
	re  *regexp2.Regexp
}

// NewCustom validates def and compiles its pattern. An empty style becomes
// StyleCustom.
func NewCustom(def CustomDefinition) (*CustomHighlighter, error) {
	def.Name = strings.TrimSpace(def.Name)
	if def.Name == "" || strings.ContainsAny(def.Name, " \t\r\n") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, def.Name)
	}
	if def.Priority <= 0 {
		return nil, fmt.Errorf("%w: %s has priority %d", ErrInvalidPriority, def.Name, def.Priority)
	}
	if def.Pattern == "" {
		return nil, fmt.Errorf("%w: %s: empty pattern", ErrInvalidPattern, def.Name)
	}
	re, err := regexp2.Compile(def.Pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, def.Name, err)
	}
	re.MatchTimeout = customMatchTimeout
	if def.Style == "" {
		def.Style = StyleCustom
	}

	return &CustomHighlighter{
		descriptor: descriptor{
			name:        def.Name,
			category:    CategoryCustom,
			priority:    def.Priority,
			description: "Custom pattern " + def.Pattern,
		},
		def: def,
		re:  re,
	}, nil
}

// Definition returns the normalized definition.
func (h *CustomHighlighter) Definition() CustomDefinition {
	return h.def
}

// FindMatches implements Highlighter.
func (h *CustomHighlighter) FindMatches(text string, _ *Config) []Match {
	m, err := h.re.FindStringMatch(text)
	if err != nil || m == nil {
		return nil
	}

	// regexp2 reports rune offsets
	var offsets []int
	if !isASCII(text) {
		offsets = runeOffsets(text)
	}
	toByte := func(r int) int {
		if offsets == nil {
			return r
		}
		return offsets[r]
	}

	var matches []Match
	for m != nil {
		if m.Length > 0 {
			start := toByte(m.Index)
			end := toByte(m.Index + m.Length)
			matches = append(matches, h.match(start, end, h.def.Style))
		}
		m, err = h.re.FindNextMatch(m)
		if err != nil {
			break
		}
	}
	return matches
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// runeOffsets returns the byte offset of every rune index, plus len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
