package highlight

import (
	"github.com/zjrosen/pgtail/internal/pgsql"
)

func sqlHighlighters() []Highlighter {
	return []Highlighter{
		NewSQL("sql.statement", 700),
		NewKeywordList("sql.keyword", CategorySQL, 710,
			"Upper-case SQL keywords outside detected statements",
			pgsql.Keywords(), StyleSQLKeyword),
		NewPattern("sql.string", CategorySQL, 720,
			"Single-quoted string literals",
			`'(?:[^']|'')*'`, StyleSQLString),
		NewPattern("sql.parameter", CategorySQL, 730,
			"Positional parameters such as $1",
			`\$\d+\b`, StyleSQLParam),
	}
}
