// Package highlight finds semantically meaningful substrings of PostgreSQL
// log lines and assigns them style keys.
//
// Highlighters report candidate matches; a Chain runs them in priority order
// and keeps only matches whose interval is still unclaimed, so the result is
// always a sorted list of non-overlapping spans. A Registry owns the built-in
// and user-defined highlighters together with the runtime Config and is the
// only way to obtain a Chain.
package highlight

// Category groups highlighters into reserved priority bands.
type Category string

const (
	CategoryStructural  Category = "structural"
	CategoryDiagnostic  Category = "diagnostic"
	CategoryPerformance Category = "performance"
	CategoryObjects     Category = "objects"
	CategoryWAL         Category = "wal"
	CategoryConnection  Category = "connection"
	CategorySQL         Category = "sql"
	CategoryLock        Category = "lock"
	CategoryCheckpoint  Category = "checkpoint"
	CategoryMisc        Category = "misc"
	CategoryCustom      Category = "custom"
)

// Band returns the first priority of the category's reserved band.
func (c Category) Band() int {
	switch c {
	case CategoryStructural:
		return 100
	case CategoryDiagnostic:
		return 200
	case CategoryPerformance:
		return 300
	case CategoryObjects:
		return 400
	case CategoryWAL:
		return 500
	case CategoryConnection:
		return 600
	case CategorySQL:
		return 700
	case CategoryLock:
		return 800
	case CategoryCheckpoint:
		return 900
	case CategoryMisc:
		return 1000
	default:
		return DefaultCustomPriority
	}
}

// Categories returns all categories in band order.
func Categories() []Category {
	return []Category{
		CategoryStructural, CategoryDiagnostic, CategoryPerformance,
		CategoryObjects, CategoryWAL, CategoryConnection, CategorySQL,
		CategoryLock, CategoryCheckpoint, CategoryMisc, CategoryCustom,
	}
}

// Highlighter finds candidate matches in a line. Lower priority values take
// precedence. FindMatches must not retain text or mutate cfg, and returns
// matches ordered by start.
type Highlighter interface {
	Name() string
	Category() Category
	Priority() int
	Description() string
	FindMatches(text string, cfg *Config) []Match
}

// descriptor carries the identity shared by every highlighter variant.
type descriptor struct {
	name        string
	category    Category
	priority    int
	description string
}

func (d descriptor) Name() string        { return d.name }
func (d descriptor) Category() Category  { return d.category }
func (d descriptor) Priority() int       { return d.priority }
func (d descriptor) Description() string { return d.description }

func (d descriptor) match(start, end int, style string) Match {
	return Match{
		Start:    start,
		End:      end,
		Style:    style,
		Priority: d.priority,
		Source:   d.name,
	}
}

// Info describes a registered highlighter for listings.
type Info struct {
	Name        string
	Category    Category
	Priority    int
	Description string
	Enabled     bool
	Custom      bool
	Pattern     string // custom highlighters only
	Style       string // custom highlighters only
}
