package pgsql

import (
	"strings"
	"unicode/utf8"
)

// Lexer splits SQL text into tokens. Every byte of the input belongs to
// exactly one token, so concatenating token texts reproduces the input.
type Lexer struct {
	input string
	pos   int // start of the next token
}

// NewLexer creates a new lexer for the input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize returns all tokens of text in order. Empty input yields nil.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	l := NewLexer(text)
	tokens := make([]Token, 0, len(text)/4+1)
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or false once the input is exhausted.
func (l *Lexer) Next() (Token, bool) {
	if l.pos >= len(l.input) {
		return Token{}, false
	}

	start := l.pos
	kind, end := l.scan(start)
	l.pos = end

	return Token{
		Kind:  kind,
		Text:  l.input[start:end],
		Start: start,
		End:   end,
	}, true
}

// scan applies the rules in order at pos and returns the kind and end offset
// of the first rule that matches. The final rule always consumes one rune.
func (l *Lexer) scan(pos int) (Kind, int) {
	ch := l.input[pos]

	if isSpace(ch) {
		return KindWhitespace, l.spanWhile(pos, isSpace)
	}
	if end, ok := l.blockComment(pos); ok {
		return KindComment, end
	}
	if end, ok := l.lineComment(pos); ok {
		return KindComment, end
	}
	if end, ok := l.dollarQuote(pos); ok {
		return KindString, end
	}
	if end, ok := l.quoted(pos, '\''); ok {
		return KindString, end
	}
	if end, ok := l.quoted(pos, '"'); ok {
		return KindQuotedIdentifier, end
	}
	if isDigit(ch) {
		return KindNumber, l.number(pos)
	}
	if isWordStart(ch) {
		end := l.spanWhile(pos, isWordPart)
		switch {
		case end < len(l.input) && l.input[end] == '(':
			return KindFunction, end
		case IsKeyword(l.input[pos:end]):
			return KindKeyword, end
		default:
			return KindIdentifier, end
		}
	}
	if pos+1 < len(l.input) && isMultiOperator(l.input[pos:pos+2]) {
		return KindOperator, pos + 2
	}
	if strings.IndexByte(singleOperators, ch) >= 0 {
		return KindOperator, pos + 1
	}
	if strings.IndexByte(punctuation, ch) >= 0 {
		return KindPunctuation, pos + 1
	}

	_, size := utf8.DecodeRuneInString(l.input[pos:])
	return KindUnknown, pos + size
}

// blockComment matches /* ... */ up to the first closing delimiter. Without a
// closing delimiter there is no match.
func (l *Lexer) blockComment(pos int) (int, bool) {
	if !strings.HasPrefix(l.input[pos:], "/*") {
		return 0, false
	}
	idx := strings.Index(l.input[pos+2:], "*/")
	if idx < 0 {
		return 0, false
	}
	return pos + 2 + idx + 2, true
}

// lineComment matches -- through the end of the line, excluding the newline.
func (l *Lexer) lineComment(pos int) (int, bool) {
	if !strings.HasPrefix(l.input[pos:], "--") {
		return 0, false
	}
	idx := strings.IndexByte(l.input[pos:], '\n')
	if idx < 0 {
		return len(l.input), true
	}
	return pos + idx, true
}

// dollarQuote matches $tag$ ... $tag$, then the untagged $$ ... $$ form.
func (l *Lexer) dollarQuote(pos int) (int, bool) {
	if l.input[pos] != '$' || pos+1 >= len(l.input) {
		return 0, false
	}

	next := l.input[pos+1]
	if isWordStart(next) {
		tagEnd := l.spanWhile(pos+1, isWordPart)
		if tagEnd < len(l.input) && l.input[tagEnd] == '$' {
			delim := l.input[pos : tagEnd+1]
			if idx := strings.Index(l.input[tagEnd+1:], delim); idx >= 0 {
				return tagEnd + 1 + idx + len(delim), true
			}
		}
	}

	if next == '$' {
		if idx := strings.Index(l.input[pos+2:], "$$"); idx >= 0 {
			return pos + 2 + idx + 2, true
		}
	}
	return 0, false
}

// quoted matches a string delimited by quote in which a doubled quote is an
// escaped quote character.
func (l *Lexer) quoted(pos int, quote byte) (int, bool) {
	if l.input[pos] != quote {
		return 0, false
	}
	for i := pos + 1; i < len(l.input); i++ {
		if l.input[i] != quote {
			continue
		}
		if i+1 < len(l.input) && l.input[i+1] == quote {
			i++
			continue
		}
		return i + 1, true
	}
	return 0, false
}

// number matches digits with an optional fractional part.
func (l *Lexer) number(pos int) int {
	end := l.spanWhile(pos, isDigit)
	if end+1 < len(l.input) && l.input[end] == '.' && isDigit(l.input[end+1]) {
		end = l.spanWhile(end+1, isDigit)
	}
	return end
}

func (l *Lexer) spanWhile(pos int, pred func(byte) bool) int {
	for pos < len(l.input) && pred(l.input[pos]) {
		pos++
	}
	return pos
}

const (
	singleOperators = "=<>+-*/%!|:&^~"
	punctuation     = "(),;.[]"
)

func isMultiOperator(s string) bool {
	switch s {
	case "<>", "!=", "<=", ">=", "||", "::":
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isWordPart(c byte) bool {
	return isWordStart(c) || isDigit(c)
}
