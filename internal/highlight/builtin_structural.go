package highlight

func structuralHighlighters() []Highlighter {
	return []Highlighter{
		NewGrouped("structural.timestamp", CategoryStructural, 100,
			"Log timestamps split into date, time, fraction and zone",
			`\b(?P<date>\d{4}-\d{2}-\d{2})[ T](?P<time>\d{2}:\d{2}:\d{2})(?P<fraction>\.\d{1,6})?`+
				`(?:\s?(?P<zone>(?:UTC|GMT|EST|EDT|CST|CDT|MST|MDT|PST|PDT|CET|CEST|EET|EEST|WET|BST|IST|JST|KST|AEST|AEDT|MSK)\b|[+-]\d{2}(?::?\d{2})?\b|Z\b))?`,
			map[string]string{
				"date":     StyleTimestampDate,
				"time":     StyleTimestampTime,
				"fraction": StyleTimestampFraction,
				"zone":     StyleTimestampZone,
			}),
		NewGrouped("structural.pid", CategoryStructural, 110,
			"Backend process id and optional session line number, as in [1234] or [1234-5]",
			`\[(?P<pid>\d+)(?:-(?P<line>\d+))?\]`,
			map[string]string{"pid": StylePID, "line": StylePIDLine}),
		NewGrouped("structural.severity", CategoryStructural, 120,
			"Message severity labels such as ERROR: and DETAIL:",
			`\b(?:(?P<panic>PANIC)|(?P<fatal>FATAL)|(?P<error>ERROR)|(?P<warning>WARNING)|(?P<notice>NOTICE)|`+
				`(?P<info>INFO)|(?P<log>LOG)|(?P<debug>DEBUG[1-5]?)|(?P<detail>DETAIL|HINT|CONTEXT|STATEMENT|QUERY|LOCATION)):`,
			map[string]string{
				"panic":   StyleSeverityPanic,
				"fatal":   StyleSeverityFatal,
				"error":   StyleSeverityError,
				"warning": StyleSeverityWarning,
				"notice":  StyleSeverityNotice,
				"info":    StyleSeverityInfo,
				"log":     StyleSeverityLog,
				"debug":   StyleSeverityDebug,
				"detail":  StyleSeverityDetail,
			}),
		NewPattern("structural.session_id", CategoryStructural, 130,
			"Session identifiers (%c) such as 65a1b2c3.1f40",
			`\b[0-9a-f]{8}\.[0-9a-f]{1,8}\b`, StyleSession),
	}
}
