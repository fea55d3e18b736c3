package pgsql

import (
	"regexp"
	"strings"
)

// Content is a log message split around its embedded SQL text.
// Prefix + SQL + Suffix always equals the original message.
type Content struct {
	Prefix string
	SQL    string
	Suffix string
}

// SQLStart returns the byte offset of the SQL text within the message.
func (c Content) SQLStart() int {
	return len(c.Prefix)
}

// String reassembles the original message.
func (c Content) String() string {
	return c.Prefix + c.SQL + c.Suffix
}

// detector is one label rule. word is the literal every match of lead starts
// with; candidates are found by scanning for it and confirmed with the
// anchored lead pattern.
type detector struct {
	name string
	word string
	lead *regexp.Regexp
	// fold matches the label in any letter case.
	fold bool
	// logged restricts the label to the start of the message or right after
	// a "LOG:" severity marker.
	logged bool
}

func newDetector(name, word, lead string, fold, logged bool) detector {
	flags := "s"
	if fold {
		flags = "is"
		word = strings.ToLower(word)
	}
	return detector{
		name:   name,
		word:   word,
		lead:   regexp.MustCompile(`^(?` + flags + `:` + lead + `)`),
		fold:   fold,
		logged: logged,
	}
}

// detectors are tried in order; the first with non-blank SQL wins.
// QUERY: matches upper case only.
var detectors = []detector{
	newDetector("duration", "duration:", `duration:\s*\d+(?:\.\d+)?\s*ms\s+(?:statement|(?:parse|bind|execute)\s+[^:]*):`, true, false),
	newDetector("statement", "statement:", `statement:`, true, false),
	newDetector("execute", "execute", `execute\s+[^:]*:`, true, true),
	newDetector("parse", "parse", `parse\s+[^:]*:`, true, true),
	newDetector("bind", "bind", `bind\s+[^:]*:`, true, true),
	newDetector("detail", "DETAIL:", `DETAIL:`, true, false),
	newDetector("query", "QUERY:", `QUERY:`, false, false),
}

// maxLabelLen bounds how far past its first byte a label is matched.
// Statement and portal names are at most 63 bytes.
const maxLabelLen = 256

// find returns the end of the first lead match in message, or -1.
func (d detector) find(message string, lastColon int) int {
	for from := 0; from <= lastColon; {
		i := d.index(message, from)
		if i < 0 || i > lastColon {
			return -1
		}
		from = i + 1
		if d.logged && !afterLogMarker(message[:i]) {
			continue
		}
		if loc := d.lead.FindStringIndex(message[i:min(len(message), i+maxLabelLen)]); loc != nil {
			return i + loc[1]
		}
	}
	return -1
}

func (d detector) index(message string, from int) int {
	if d.fold {
		return indexFold(message, d.word, from)
	}
	if i := strings.Index(message[from:], d.word); i >= 0 {
		return from + i
	}
	return -1
}

// Detect locates SQL text in a log message. It returns false when no rule
// matches or every matching rule captures only whitespace.
func Detect(message string) (Content, bool) {
	c, _, ok := DetectWithRule(message)
	return c, ok
}

// DetectWithRule is Detect that also reports which rule matched.
func DetectWithRule(message string) (Content, string, bool) {
	// Every label ends in a colon.
	lastColon := strings.LastIndexByte(message, ':')
	if lastColon < 0 {
		return Content{}, "", false
	}
	for _, d := range detectors {
		end := d.find(message, lastColon)
		if end < 0 {
			continue
		}
		for end < len(message) && isRegexpSpace(message[end]) {
			end++
		}
		stop := len(message)
		for stop > end && isRegexpSpace(message[stop-1]) {
			stop--
		}
		if stop == end {
			continue
		}
		return Content{
			Prefix: message[:end],
			SQL:    message[end:stop],
			Suffix: message[stop:],
		}, d.name, true
	}
	return Content{}, "", false
}

// afterLogMarker reports whether a label preceded by before starts the
// message or directly follows a LOG: severity.
func afterLogMarker(before string) bool {
	for len(before) > 0 && isRegexpSpace(before[len(before)-1]) {
		before = before[:len(before)-1]
	}
	return before == "" || hasSuffixFold(before, "log:")
}

// isRegexpSpace matches the regexp \s class.
func isRegexpSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// indexFold is strings.Index with ASCII case folding, starting at from.
// word must be lower case ASCII.
func indexFold(s, word string, from int) int {
	if len(word) == 0 {
		return from
	}
	first := word[0]
	for i := from; i+len(word) <= len(s); i++ {
		if lowerASCII(s[i]) != first {
			continue
		}
		if equalFoldASCII(s[i:i+len(word)], word) {
			return i
		}
	}
	return -1
}

// hasSuffixFold reports whether s ends with the lower case ASCII suffix,
// ignoring case.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && equalFoldASCII(s[len(s)-len(suffix):], suffix)
}

func equalFoldASCII(s, lower string) bool {
	for i := 0; i < len(lower); i++ {
		if lowerASCII(s[i]) != lower[i] {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
