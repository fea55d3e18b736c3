package highlight

func miscHighlighters() []Highlighter {
	return []Highlighter{
		NewPattern("misc.uuid", CategoryMisc, 1000,
			"UUIDs",
			`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`, StyleUUID),
		NewPattern("misc.url", CategoryMisc, 1010,
			"URLs and connection URIs",
			`\b[a-z][a-z0-9+.-]*://[^\s"'<>]+`, StyleURL),
		NewGrouped("misc.path", CategoryMisc, 1020,
			"Absolute file system paths",
			`(?:^|\s)(?P<path>(?:/[A-Za-z0-9._-]+)+/?)`,
			map[string]string{"path": StylePath}),
		NewGrouped("misc.constant", CategoryMisc, 1030,
			"Boolean and NULL constants",
			`\b(?:(?P<bool>true|false|TRUE|FALSE)|(?P<null>NULL|null))\b`,
			map[string]string{"bool": StyleBoolean, "null": StyleNull}),
		NewPattern("misc.number", CategoryMisc, 1040,
			"Remaining numbers",
			`\b\d+(?:\.\d+)?\b`, StyleNumber),
	}
}
