package highlight

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// KeywordHighlighter finds any of a fixed set of keywords in one pass using an
// Aho-Corasick automaton. Matches inside a larger identifier are dropped.
type KeywordHighlighter struct {
	descriptor
	ac         ahocorasick.AhoCorasick
	keywords   []string
	styles     []string // parallel to keywords
	ignoreCase bool
}

// KeywordOption configures a KeywordHighlighter.
type KeywordOption func(*keywordOptions)

type keywordOptions struct {
	ignoreCase bool
}

// IgnoreCase matches keywords regardless of ASCII case.
func IgnoreCase() KeywordOption {
	return func(o *keywordOptions) { o.ignoreCase = true }
}

// NewKeywords builds the automaton from a keyword to style-key mapping.
func NewKeywords(name string, category Category, priority int, description string, styles map[string]string, opts ...KeywordOption) *KeywordHighlighter {
	var o keywordOptions
	for _, opt := range opts {
		opt(&o)
	}

	h := &KeywordHighlighter{
		descriptor: descriptor{name: name, category: category, priority: priority, description: description},
		keywords:   make([]string, 0, len(styles)),
		styles:     make([]string, 0, len(styles)),
		ignoreCase: o.ignoreCase,
	}
	for kw, style := range styles {
		if kw == "" {
			continue
		}
		h.keywords = append(h.keywords, kw)
		h.styles = append(h.styles, style)
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: o.ignoreCase,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})
	h.ac = builder.Build(h.keywords)
	return h
}

// NewKeywordList is NewKeywords with one style for every keyword.
func NewKeywordList(name string, category Category, priority int, description string, keywords []string, style string, opts ...KeywordOption) *KeywordHighlighter {
	styles := make(map[string]string, len(keywords))
	for _, kw := range keywords {
		styles[kw] = style
	}
	return NewKeywords(name, category, priority, description, styles, opts...)
}

// Keywords returns the number of keywords in the automaton.
func (h *KeywordHighlighter) Keywords() int {
	return len(h.keywords)
}

// FindMatches implements Highlighter.
func (h *KeywordHighlighter) FindMatches(text string, _ *Config) []Match {
	if len(h.keywords) == 0 || text == "" {
		return nil
	}
	var matches []Match
	for _, m := range h.ac.FindAll(text) {
		start, end := m.Start(), m.End()
		if !onWordBoundary(text, start, end) {
			continue
		}
		matches = append(matches, h.match(start, end, h.styles[m.Pattern()]))
	}
	return matches
}

// onWordBoundary reports whether [start, end) is not preceded or followed by
// an identifier character.
func onWordBoundary(text string, start, end int) bool {
	if start > 0 && isIdentByte(text[start-1]) {
		return false
	}
	if end < len(text) && isIdentByte(text[end]) {
		return false
	}
	return true
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// CaseInsensitive reports whether keywords match regardless of case.
func (h *KeywordHighlighter) CaseInsensitive() bool {
	return h.ignoreCase
}
