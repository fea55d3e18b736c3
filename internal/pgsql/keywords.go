package pgsql

// keywords holds reserved and common unreserved PostgreSQL keywords plus the
// built-in type names that appear bare in statements.
var keywords = toSet(
	// DML and queries
	"SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "IN", "IS", "NULL", "LIKE",
	"ILIKE", "SIMILAR", "BETWEEN", "EXISTS", "ANY", "ALL", "SOME", "AS", "ON",
	"USING", "JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER", "CROSS",
	"NATURAL", "LATERAL", "GROUP", "BY", "HAVING", "ORDER", "ASC", "DESC",
	"NULLS", "FIRST", "LAST", "LIMIT", "OFFSET", "FETCH", "NEXT", "ROWS", "ROW",
	"ONLY", "UNION", "INTERSECT", "EXCEPT", "DISTINCT", "INSERT", "INTO",
	"VALUES", "DEFAULT", "UPDATE", "SET", "DELETE", "RETURNING", "MERGE",
	"MATCHED", "CONFLICT", "DO", "NOTHING", "WITH", "RECURSIVE", "WINDOW",
	"OVER", "PARTITION", "RANGE", "GROUPS", "PRECEDING", "FOLLOWING",
	"UNBOUNDED", "CURRENT", "FILTER", "WITHIN", "ORDINALITY", "TABLESAMPLE",
	"CASE", "WHEN", "THEN", "ELSE", "END", "CAST", "COLLATE", "ESCAPE", "TRUE",
	"FALSE", "UNKNOWN", "OF", "FOR", "SHARE", "NOWAIT", "SKIP", "LOCKED", "KEY",
	"NO", "TIES", "TO", "AT", "ZONE",

	// DDL
	"CREATE", "ALTER", "DROP", "TRUNCATE", "RENAME", "TABLE", "VIEW",
	"MATERIALIZED", "INDEX", "UNIQUE", "PRIMARY", "FOREIGN", "REFERENCES",
	"CONSTRAINT", "CHECK", "COLUMN", "ADD", "SCHEMA", "DATABASE", "SEQUENCE",
	"FUNCTION", "PROCEDURE", "TRIGGER", "TYPE", "DOMAIN", "EXTENSION", "ROLE",
	"USER", "TABLESPACE", "CASCADE", "RESTRICT", "IF", "TEMPORARY", "TEMP",
	"UNLOGGED", "CONCURRENTLY", "INHERITS", "GENERATED", "ALWAYS", "IDENTITY",
	"STORED", "OWNED", "OWNER", "REPLACE", "RETURNS", "LANGUAGE", "IMMUTABLE",
	"STABLE", "VOLATILE", "STRICT", "SECURITY", "DEFINER", "INVOKER",
	"PUBLICATION", "SUBSCRIPTION", "POLICY", "RULE", "EACH", "STATEMENT",
	"BEFORE", "AFTER", "INSTEAD", "EXECUTE", "DEFERRABLE", "INITIALLY",
	"DEFERRED", "IMMEDIATE", "VALID", "VALIDATE", "ENABLE", "DISABLE",
	"ATTACH", "DETACH", "INCLUDE", "COMMENT",

	// Transactions, sessions and utilities
	"BEGIN", "COMMIT", "ROLLBACK", "SAVEPOINT", "RELEASE", "START",
	"TRANSACTION", "ISOLATION", "LEVEL", "READ", "WRITE", "COMMITTED",
	"UNCOMMITTED", "REPEATABLE", "SERIALIZABLE", "WORK", "PREPARE", "PREPARED",
	"DEALLOCATE", "GRANT", "REVOKE", "PRIVILEGES", "PUBLIC", "LOCK", "MODE",
	"EXCLUSIVE", "ACCESS", "VACUUM", "ANALYZE", "ANALYSE", "VERBOSE", "FREEZE",
	"REINDEX", "CLUSTER", "EXPLAIN", "COPY", "STDIN", "STDOUT", "DECLARE",
	"CURSOR", "CLOSE", "MOVE", "LISTEN", "NOTIFY", "UNLISTEN", "LOAD", "RESET",
	"SHOW", "DISCARD", "CHECKPOINT", "REFRESH", "CALL", "SESSION", "LOCAL",
	"AUTHORIZATION",

	// Types
	"INT", "INTEGER", "SMALLINT", "BIGINT", "SERIAL", "BIGSERIAL", "REAL",
	"DOUBLE", "PRECISION", "NUMERIC", "DECIMAL", "FLOAT", "BOOLEAN", "BOOL",
	"CHAR", "CHARACTER", "VARCHAR", "VARYING", "TEXT", "BYTEA", "DATE", "TIME",
	"TIMESTAMP", "TIMESTAMPTZ", "INTERVAL", "WITHOUT", "UUID", "JSON", "JSONB",
	"XML", "ARRAY", "OID", "MONEY", "INET", "CIDR",

	// Expression helpers
	"COALESCE", "NULLIF", "GREATEST", "LEAST", "EXTRACT", "OVERLAPS",
	"POSITION", "SUBSTRING", "TRIM", "LEADING", "TRAILING", "BOTH",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
	"SESSION_USER", "LOCALTIME", "LOCALTIMESTAMP",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
