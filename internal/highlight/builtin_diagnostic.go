package highlight

import "strings"

var errorConditions = []string{
	`deadlock detected`,
	`duplicate key value violates unique constraint`,
	`violates (?:foreign key|check|not-null|exclusion) constraint`,
	`null value in column`,
	`could not serialize access`,
	`canceling statement due to (?:statement timeout|lock timeout|user request|conflict with recovery)`,
	`canceling autovacuum task`,
	`terminating connection due to (?:administrator command|idle-in-transaction timeout|conflict with recovery)`,
	`syntax error at or near`,
	`does not exist`,
	`already exists`,
	`permission denied`,
	`out of memory`,
	`too many connections`,
	`division by zero`,
	`value too long for type`,
	`invalid input syntax`,
	`could not (?:open|read|write|connect|receive|send|fork|access)`,
	`server process \(PID \d+\) (?:was terminated|exited)`,
	`remaining connection slots are reserved`,
}

func diagnosticHighlighters() []Highlighter {
	return []Highlighter{
		NewGrouped("diagnostic.sqlstate", CategoryDiagnostic, 200,
			"SQLSTATE error codes",
			`(?i:sqlstate)\s*[=:]?\s*(?P<code>[0-9A-Z]{5})\b|\b(?P<verbose>[0-9][0-9A-Z]{4}):\s`,
			map[string]string{"code": StyleSQLState, "verbose": StyleSQLState}),
		NewPattern("diagnostic.error_condition", CategoryDiagnostic, 210,
			"Well-known error phrases",
			`(?i)\b(?:`+strings.Join(errorConditions, "|")+`)`, StyleErrorCondition),
		NewPattern("diagnostic.position", CategoryDiagnostic, 220,
			"Error cursor positions such as at character 15",
			`(?i)\bat character \d+\b`, StyleErrorPosition),
		NewGrouped("diagnostic.constraint", CategoryDiagnostic, 230,
			"Constraint names in violation messages",
			`(?i)\bconstraint (?P<name>"[^"]+")`,
			map[string]string{"name": StyleConstraint}),
	}
}
