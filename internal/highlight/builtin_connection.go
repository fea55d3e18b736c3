package highlight

func connectionHighlighters() []Highlighter {
	return []Highlighter{
		NewPattern("connection.event", CategoryConnection, 600,
			"Connection lifecycle messages",
			`(?i)\b(?:connection received|connection authorized|connection authenticated|replication connection authorized|disconnection|password authentication failed|no pg_hba\.conf entry)\b`,
			StyleConnectionEvent),
		NewGrouped("connection.user_database", CategoryConnection, 610,
			"user@database pairs",
			`\b(?P<user>[A-Za-z_][A-Za-z0-9_.-]*)@(?P<database>[A-Za-z_][A-Za-z0-9_-]*)`,
			map[string]string{"user": StyleConnectionUser, "database": StyleConnectionDB}),
		NewGrouped("connection.parameter", CategoryConnection, 620,
			"Connection key=value parameters",
			`\b(?P<key>user|database|dbname|host|port|application_name|client|method|identity|sslmode|SSL|remote)=(?P<value>[^\s,]+)`,
			map[string]string{"key": StyleConnectionKey, "value": StyleConnectionValue}),
		NewPattern("connection.ip_address", CategoryConnection, 630,
			"IPv4 and IPv6 addresses",
			`\b(?:\d{1,3}\.){3}\d{1,3}(?:/\d{1,2})?\b|\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b|\b(?:[0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}\b|::1\b`,
			StyleHost),
	}
}
