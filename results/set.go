package results

import (
	"fmt"
	"slices"

	"github.com/clemsciences/cltk-query/core"
)

// ResultSet maps documents to the matches found in them.
// The zero value is not usable; create one with NewResultSet.
type ResultSet struct {
	docs    []*core.Document
	matches map[*core.Document][]core.Match
}

// NewResultSet creates an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{
		matches: make(map[*core.Document][]core.Match),
	}
}

// FromSingle wraps one search result as a one-entry result set.
// A document without matches still gets an entry.
func FromSingle(r *SearchResult) (*ResultSet, error) {
	s := NewResultSet()
	if err := s.Add(r); err != nil {
		return nil, err
	}
	return s, nil
}

// Combine builds a result set from two search results.
// Both results referencing the same document is an ErrUnsupportedMerge.
func Combine(a, b *SearchResult) (*ResultSet, error) {
	s := NewResultSet()
	if err := s.Add(a); err != nil {
		return nil, err
	}
	if err := s.Add(b); err != nil {
		return nil, err
	}
	return s, nil
}

// Merge returns the union of two result sets, a's documents first.
// Neither input is modified. A document present in both is an
// ErrUnsupportedMerge.
func Merge(a, b *ResultSet) (*ResultSet, error) {
	if a == nil || b == nil {
		return nil, ErrResultRequired
	}
	s := NewResultSet()
	for _, src := range []*ResultSet{a, b} {
		for _, doc := range src.docs {
			if err := s.put(doc, src.matches[doc]); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Add inserts the matches of one search result.
func (s *ResultSet) Add(r *SearchResult) error {
	if r == nil {
		return ErrResultRequired
	}
	return s.put(r.doc, r.matches)
}

func (s *ResultSet) put(doc *core.Document, matches []core.Match) error {
	if doc == nil {
		return core.ErrInvalidDocument
	}
	if _, exists := s.matches[doc]; exists {
		return fmt.Errorf("%w: %q", ErrUnsupportedMerge, doc.Name)
	}
	// Never nil, so a present document is distinguishable from a missing one.
	own := make([]core.Match, len(matches))
	copy(own, matches)
	s.matches[doc] = own
	s.docs = append(s.docs, doc)
	return nil
}

// Lookup returns the matches found in doc. A document that is present
// without matches yields an empty slice; an unknown document yields
// ErrLookupMiss.
func (s *ResultSet) Lookup(doc *core.Document) ([]core.Match, error) {
	matches, ok := s.matches[doc]
	if !ok {
		name := "<nil>"
		if doc != nil {
			name = doc.Name
		}
		return nil, fmt.Errorf("%w: %q", ErrLookupMiss, name)
	}
	return slices.Clone(matches), nil
}

// Contains reports whether doc has an entry.
func (s *ResultSet) Contains(doc *core.Document) bool {
	_, ok := s.matches[doc]
	return ok
}

// Documents returns the documents in insertion order.
func (s *ResultSet) Documents() []*core.Document {
	return slices.Clone(s.docs)
}

// Len returns the number of documents.
func (s *ResultSet) Len() int {
	return len(s.docs)
}

// Total returns the number of matches across all documents.
func (s *ResultSet) Total() int {
	total := 0
	for _, doc := range s.docs {
		total += len(s.matches[doc])
	}
	return total
}

// Flatten returns all matches in document-then-position order.
// It is computed from the current contents on every call.
func (s *ResultSet) Flatten() []core.Match {
	out := make([]core.Match, 0, s.Total())
	for _, doc := range s.docs {
		out = append(out, s.matches[doc]...)
	}
	return out
}
