package highlight

import (
	"cmp"
	"slices"
	"sort"
)

// Match is a styled half-open byte interval [Start, End) of a line.
type Match struct {
	Start    int
	End      int
	Style    string
	Priority int
	Source   string // name of the highlighter that produced it
}

// Len returns the byte length of the match.
func (m Match) Len() int {
	return m.End - m.Start
}

// Text returns the matched slice of text.
func (m Match) Text(text string) string {
	return text[m.Start:m.End]
}

// valid reports whether the match is non-empty and lies within [0, n).
func (m Match) valid(n int) bool {
	return m.Start >= 0 && m.End > m.Start && m.End <= n
}

func sortByStart(matches []Match) {
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Start, b.Start)
	})
}

type interval struct {
	start, end int
}

// Occupancy tracks the intervals already claimed during one highlighting
// pass. Claimed intervals never overlap and are kept sorted by start.
type Occupancy struct {
	claimed []interval
}

// NewOccupancy returns an empty tracker.
func NewOccupancy() *Occupancy {
	return &Occupancy{}
}

// IsFree reports whether no byte of [start, end) has been claimed.
func (o *Occupancy) IsFree(start, end int) bool {
	if end <= start {
		return false
	}
	// first claimed interval ending after start
	i := sort.Search(len(o.claimed), func(i int) bool {
		return o.claimed[i].end > start
	})
	return i == len(o.claimed) || o.claimed[i].start >= end
}

// Claim marks [start, end) as taken. It returns false and claims nothing
// when any part of the interval is already taken.
func (o *Occupancy) Claim(start, end int) bool {
	if !o.IsFree(start, end) {
		return false
	}
	i := sort.Search(len(o.claimed), func(i int) bool {
		return o.claimed[i].start >= end
	})
	o.claimed = slices.Insert(o.claimed, i, interval{start, end})
	return true
}

// Len returns the number of claimed intervals.
func (o *Occupancy) Len() int {
	return len(o.claimed)
}
