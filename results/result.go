package results

import (
	"slices"

	"github.com/clemsciences/cltk-query/core"
)

// Result is implemented by both SearchResult and ResultSet.
type Result interface {
	Total() int
	Flatten() []core.Match
}

var (
	_ Result = (*SearchResult)(nil)
	_ Result = (*ResultSet)(nil)
)

// TotalMatches returns the number of matches held by r.
func TotalMatches(r Result) int {
	return r.Total()
}

// Flatten returns every match held by r in document-then-position order.
func Flatten(r Result) []core.Match {
	return r.Flatten()
}

// SearchResult holds the matches found in exactly one document.
type SearchResult struct {
	doc     *core.Document
	matches []core.Match
}

// NewSearchResult creates an empty result bound to doc.
func NewSearchResult(doc *core.Document) *SearchResult {
	return &SearchResult{doc: doc}
}

// Add appends a match. Matches are expected in increasing start order.
func (r *SearchResult) Add(m core.Match) {
	r.matches = append(r.matches, m)
}

// Document returns the document the matches were found in.
func (r *SearchResult) Document() *core.Document {
	return r.doc
}

// Matches returns a copy of the matches in the order they were added.
func (r *SearchResult) Matches() []core.Match {
	return slices.Clone(r.matches)
}

// Total returns the number of matches.
func (r *SearchResult) Total() int {
	return len(r.matches)
}

// Flatten is Matches; a SearchResult covers a single document.
func (r *SearchResult) Flatten() []core.Match {
	return r.Matches()
}
