package render

import "github.com/zjrosen/pgtail/internal/highlight"

// Segment is a run of text with an optional style key. Unmatched text has an
// empty Style.
type Segment struct {
	Text  string
	Style string
	Start int
	End   int
}

// Segments splits text at match boundaries. Matches must be non-overlapping
// and ordered by start, which is what Chain.Highlight returns. Concatenating
// the segment texts reproduces text exactly.
func Segments(text string, matches []highlight.Match) []Segment {
	if text == "" {
		return nil
	}
	out := make([]Segment, 0, 2*len(matches)+1)
	pos := 0
	for _, m := range matches {
		if m.Start < pos || m.End > len(text) || m.Start >= m.End {
			continue
		}
		if m.Start > pos {
			out = append(out, Segment{Text: text[pos:m.Start], Start: pos, End: m.Start})
		}
		out = append(out, Segment{Text: text[m.Start:m.End], Style: m.Style, Start: m.Start, End: m.End})
		pos = m.End
	}
	if pos < len(text) {
		out = append(out, Segment{Text: text[pos:], Start: pos, End: len(text)})
	}
	return out
}

// SQLSegments converts tokenized SQL into segments.
func SQLSegments(tokens []highlight.TokenStyle) []Segment {
	out := make([]Segment, len(tokens))
	for i, ts := range tokens {
		out[i] = Segment{Text: ts.Token.Text, Style: ts.Style, Start: ts.Token.Start, End: ts.Token.End}
	}
	return out
}
