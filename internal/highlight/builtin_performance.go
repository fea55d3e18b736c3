package highlight

func performanceHighlighters() []Highlighter {
	return []Highlighter{
		NewDuration("performance.duration", 300),
		NewSize("performance.size", 310),
		NewPattern("performance.rows", CategoryPerformance, 320,
			"Row and tuple counts",
			`(?i)\brows=\d+\b|\b\d+ (?:rows?|tuples?)\b`, StyleRows),
		NewPattern("performance.percentage", CategoryPerformance, 330,
			"Percentages",
			`\b\d+(?:\.\d+)?%`, StylePercent),
		NewGrouped("performance.plan_cost", CategoryPerformance, 340,
			"EXPLAIN cost and actual time ranges",
			`\bcost=(?P<cost>\d+(?:\.\d+)?\.\.\d+(?:\.\d+)?)|\bactual time=(?P<time>\d+(?:\.\d+)?\.\.\d+(?:\.\d+)?)`,
			map[string]string{"cost": StylePlanCost, "time": StylePlanTime}),
		NewPattern("performance.buffers", CategoryPerformance, 350,
			"EXPLAIN buffer usage",
			`\bBuffers: (?:shared|local|temp)(?: (?:hit|read|dirtied|written)=\d+)+`, StyleBuffers),
	}
}
