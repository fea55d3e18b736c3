package highlight

func objectHighlighters() []Highlighter {
	return []Highlighter{
		NewGrouped("objects.relation", CategoryObjects, 400,
			"Quoted object names after relation, table, index and similar nouns",
			`(?i)\b(?:relation|table|index|sequence|view|function|schema|database|role|column|type|extension)\s+(?P<name>"[^"]+")`,
			map[string]string{"name": StyleRelation}),
		NewPattern("objects.quoted_identifier", CategoryObjects, 410,
			"Double-quoted identifiers",
			`"(?:[^"]|"")*"`, StyleQuotedIdentifier),
		NewPattern("objects.qualified_name", CategoryObjects, 420,
			"Names qualified by a system or public schema",
			`\b(?:public|pg_catalog|pg_toast|information_schema|pg_temp(?:_\d+)?)\.[A-Za-z_][A-Za-z0-9_]*\b`, StyleQualifiedName),
		NewPattern("objects.index_name", CategoryObjects, 430,
			"Index and constraint names by conventional suffix",
			`\b[a-z][a-z0-9_]*_(?:pkey|key|idx|index|fkey|excl|check)\b`, StyleIndexName),
		NewPattern("objects.oid", CategoryObjects, 440,
			"Object identifiers",
			`(?i)\b(?:oid|relfilenode)[ =:]+\d+\b`, StyleOID),
	}
}
