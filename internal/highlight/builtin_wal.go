package highlight

func walHighlighters() []Highlighter {
	return []Highlighter{
		NewPattern("wal.lsn", CategoryWAL, 500,
			"Log sequence numbers such as 0/1A2B3C4",
			`\b[0-9A-F]{1,8}/[0-9A-F]{1,8}\b`, StyleLSN),
		NewPattern("wal.segment", CategoryWAL, 510,
			"WAL segment file names",
			`\b[0-9A-F]{24}\b`, StyleSegment),
		NewPattern("wal.timeline", CategoryWAL, 520,
			"Timeline ids",
			`(?i)\b(?:timeline|tli)[ =:]*\d+\b`, StyleTimeline),
		NewGrouped("wal.replication_slot", CategoryWAL, 530,
			"Replication slot names given as slot_name settings",
			`(?i)\b(?:primary_)?slot_name\s*[=:]\s*'?(?P<slot>[A-Za-z_][A-Za-z0-9_]*)`,
			map[string]string{"slot": StyleSlot}),
		NewPattern("wal.xid", CategoryWAL, 540,
			"Transaction ids",
			`(?i)\b(?:xid|xmin|xmax|transaction(?: id)?)[ =:]+\d+\b`, StyleXID),
	}
}
