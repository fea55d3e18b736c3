package highlight

import (
	"slices"
	"sync"
)

var builtinOnce = sync.OnceValue(func() []Highlighter {
	var hs []Highlighter
	hs = append(hs, structuralHighlighters()...)
	hs = append(hs, diagnosticHighlighters()...)
	hs = append(hs, performanceHighlighters()...)
	hs = append(hs, objectHighlighters()...)
	hs = append(hs, walHighlighters()...)
	hs = append(hs, connectionHighlighters()...)
	hs = append(hs, sqlHighlighters()...)
	hs = append(hs, lockHighlighters()...)
	hs = append(hs, checkpointHighlighters()...)
	hs = append(hs, miscHighlighters()...)
	return hs
})

// Builtins returns the built-in highlighter catalogue. The highlighters are
// compiled once and shared; the returned slice is a fresh copy.
func Builtins() []Highlighter {
	return slices.Clone(builtinOnce())
}
