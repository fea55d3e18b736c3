// Package pgsql tokenizes PostgreSQL statements for coloring and locates
// SQL text embedded in server log messages.
package pgsql

import "strings"

// Kind classifies a lexical token.
type Kind int

const (
	KindUnknown Kind = iota
	KindWhitespace
	KindComment
	KindString
	KindQuotedIdentifier
	KindNumber
	KindKeyword
	KindFunction
	KindIdentifier
	KindOperator
	KindPunctuation
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindWhitespace:
		return "whitespace"
	case KindComment:
		return "comment"
	case KindString:
		return "string"
	case KindQuotedIdentifier:
		return "quoted_identifier"
	case KindNumber:
		return "number"
	case KindKeyword:
		return "keyword"
	case KindFunction:
		return "function"
	case KindIdentifier:
		return "identifier"
	case KindOperator:
		return "operator"
	case KindPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Token is a classified slice of the input. Start and End are byte offsets,
// End exclusive.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// Len returns the byte length of the token.
func (t Token) Len() int {
	return t.End - t.Start
}

// IsKeyword reports whether word is a PostgreSQL keyword, ignoring case.
func IsKeyword(word string) bool {
	_, ok := keywords[strings.ToUpper(word)]
	return ok
}

// Keywords returns the keyword set in upper case, unordered.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	return out
}
