package highlight

import (
	"github.com/zjrosen/pgtail/internal/pgsql"
)

// TokenStyle pairs a SQL token with its style key. Whitespace and unknown
// tokens carry an empty style.
type TokenStyle struct {
	Token pgsql.Token
	Style string
}

// tokenStyles maps token kinds to style keys.
var tokenStyles = map[pgsql.Kind]string{
	pgsql.KindKeyword:          StyleSQLKeyword,
	pgsql.KindFunction:         StyleSQLFunction,
	pgsql.KindIdentifier:       StyleSQLIdentifier,
	pgsql.KindQuotedIdentifier: StyleSQLQuotedIdentifier,
	pgsql.KindString:           StyleSQLString,
	pgsql.KindNumber:           StyleSQLNumber,
	pgsql.KindOperator:         StyleSQLOperator,
	pgsql.KindComment:          StyleSQLComment,
	pgsql.KindPunctuation:      StyleSQLPunctuation,
}

// StyleForKind returns the style key for a token kind, or "".
func StyleForKind(k pgsql.Kind) string {
	return tokenStyles[k]
}

// HighlightSQL tokenizes sql and returns each token with its style key.
func HighlightSQL(sql string) []TokenStyle {
	tokens := pgsql.Tokenize(sql)
	out := make([]TokenStyle, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenStyle{Token: tok, Style: tokenStyles[tok.Kind]}
	}
	return out
}

// SQLHighlighter finds the SQL portion of a log message and styles it token
// by token.
type SQLHighlighter struct {
	descriptor
}

// NewSQL returns the statement highlighter.
func NewSQL(name string, priority int) *SQLHighlighter {
	return &SQLHighlighter{descriptor: descriptor{
		name:        name,
		category:    CategorySQL,
		priority:    priority,
		description: "SQL text after statement:, execute, parse, bind, DETAIL: and QUERY: labels, styled per token",
	}}
}

// FindMatches implements Highlighter.
func (h *SQLHighlighter) FindMatches(text string, _ *Config) []Match {
	content, ok := pgsql.Detect(text)
	if !ok {
		return nil
	}
	offset := content.SQLStart()
	var matches []Match
	for _, ts := range HighlightSQL(content.SQL) {
		if ts.Style == "" {
			continue
		}
		matches = append(matches, h.match(offset+ts.Token.Start, offset+ts.Token.End, ts.Style))
	}
	return matches
}
