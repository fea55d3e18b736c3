package highlight

func checkpointHighlighters() []Highlighter {
	return []Highlighter{
		NewPattern("checkpoint.event", CategoryCheckpoint, 900,
			"Checkpoint, restartpoint and recovery milestones",
			`(?i)\b(?:(?:checkpoint|restartpoint) (?:starting|complete)|checkpoints are occurring too frequently|recovery restart point|redo (?:starts|done) at|database system is ready to accept(?: read-only)? connections|database system was (?:shut down|interrupted))\b`,
			StyleCheckpointEvent),
		NewGrouped("checkpoint.flags", CategoryCheckpoint, 910,
			"Checkpoint trigger flags",
			`(?i)\b(?:checkpoint|restartpoint) starting:(?P<flags>(?: (?:immediate|force|wait|time|xlog|wal|shutdown|end-of-recovery|flush-all|fast))+)`,
			map[string]string{"flags": StyleCheckpointFlag}),
		NewPattern("checkpoint.stats", CategoryCheckpoint, 920,
			"Checkpoint statistics keys",
			`\bwrote \d+ buffers\b|\b(?:write|sync|total|files|longest|average|distance|estimate|lsn|redo lsn)=`,
			StyleCheckpointStat),
		NewPattern("checkpoint.vacuum", CategoryCheckpoint, 930,
			"Autovacuum and autoanalyze reports",
			`(?i)\b(?:automatic (?:aggressive )?vacuum(?: to prevent wraparound)?|automatic analyze|index scans: \d+|pages: \d+ removed|tuples: \d+ removed)`,
			StyleVacuum),
	}
}
