package highlight

import (
	"cmp"
	"slices"
)

// Chain is an ordered, immutable list of enabled highlighters bound to a
// config snapshot. Obtain one from Registry.BuildChain.
type Chain struct {
	highlighters []Highlighter
	cfg          *Config
}

// NewChain sorts highlighters by ascending priority, keeping registration
// order for equal priorities.
func NewChain(highlighters []Highlighter, cfg *Config) *Chain {
	sorted := slices.Clone(highlighters)
	slices.SortStableFunc(sorted, func(a, b Highlighter) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	return &Chain{highlighters: sorted, cfg: cfg}
}

// Highlight returns the non-overlapping matches of text ordered by start.
func (c *Chain) Highlight(text string) []Match {
	if c == nil {
		return nil
	}
	return Run(text, c.highlighters, c.cfg)
}

// Names returns the highlighter names in execution order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.highlighters))
	for i, h := range c.highlighters {
		names[i] = h.Name()
	}
	return names
}

// Len returns the number of highlighters in the chain.
func (c *Chain) Len() int {
	return len(c.highlighters)
}

// Run applies highlighters, which must already be in priority order, to text.
// Each candidate is accepted only if its whole interval is unclaimed, so a
// higher-precedence highlighter always wins an overlap and later ones can
// still claim whatever is left.
func Run(text string, highlighters []Highlighter, cfg *Config) []Match {
	if text == "" || len(highlighters) == 0 {
		return nil
	}
	occ := NewOccupancy()
	var accepted []Match
	for _, h := range highlighters {
		for _, m := range h.FindMatches(text, cfg) {
			if !m.valid(len(text)) {
				continue
			}
			if occ.Claim(m.Start, m.End) {
				accepted = append(accepted, m)
			}
		}
	}
	sortByStart(accepted)
	return accepted
}
