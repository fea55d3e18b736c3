package highlight

// lockModes maps lock mode spellings to a strength style.
var lockModes = map[string]string{
	"AccessShareLock":          StyleLockWeak,
	"RowShareLock":             StyleLockWeak,
	"RowExclusiveLock":         StyleLockWeak,
	"ShareUpdateExclusiveLock": StyleLockMedium,
	"ShareLock":                StyleLockMedium,
	"ShareRowExclusiveLock":    StyleLockMedium,
	"ExclusiveLock":            StyleLockStrong,
	"AccessExclusiveLock":      StyleLockStrong,

	"ACCESS SHARE":           StyleLockWeak,
	"ROW SHARE":              StyleLockWeak,
	"ROW EXCLUSIVE":          StyleLockWeak,
	"SHARE UPDATE EXCLUSIVE": StyleLockMedium,
	"SHARE ROW EXCLUSIVE":    StyleLockMedium,
	"ACCESS EXCLUSIVE":       StyleLockStrong,
}

func lockHighlighters() []Highlighter {
	return []Highlighter{
		NewKeywords("lock.mode", CategoryLock, 800,
			"Lock modes colored by strength",
			lockModes),
		NewPattern("lock.event", CategoryLock, 810,
			"Lock wait and acquisition messages",
			`(?i)\b(?:still waiting for|acquired|waits for|blocked by|lock timeout|Process holding the lock|Wait queue)\b`,
			StyleLockEvent),
		NewPattern("lock.object", CategoryLock, 820,
			"Locked objects such as relation 16384 of database 5",
			`(?i)\b(?:relation|tuple|page|advisory lock|virtual transaction|object)\s+(?:\(\d+,\d+\)|\[?\d+(?:/\d+)?\]?)(?:\s+of\s+(?:relation|database)\s+\d+)*`,
			StyleLockObject),
	}
}
