package search

import (
	"context"
	"log/slog"
	"slices"

	"github.com/clemsciences/cltk-query/core"
	"github.com/clemsciences/cltk-query/match"
	"github.com/clemsciences/cltk-query/results"
)

// Searcher finds single-token and multi-token matches in documents.
type Searcher struct {
	monitor SearchMonitor
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor that observes every search.
// A nil monitor disables monitoring.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(opts ...Option) (*Searcher, error) {
	s := &Searcher{
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns the matches of query in doc.
// It fails with core.ErrInvalidDocument for a nil document and with
// core.ErrInvalidQueryShape for a query that is neither a single query
// token nor a non-empty sequence.
func (s *Searcher) Search(doc *core.Document, query core.Query) (*results.SearchResult, error) {
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}
	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}

	s.monitor.Start(doc, query)

	result := results.NewSearchResult(doc)
	if query.IsSequence() {
		s.searchSequence(doc, query.Tokens(), result)
	} else {
		s.searchWord(doc, query.Token(0), result)
	}

	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("query executed",
			"query_id", core.IDFromQuery(query),
			"document", doc.Name,
			"sequence", query.IsSequence(),
			"tokens", doc.Len(),
			"matches", result.Total(),
		)
	}
	s.monitor.Finish(result)

	return result, nil
}

func (s *Searcher) searchWord(doc *core.Document, q core.QueryToken, result *results.SearchResult) {
	for i, tok := range doc.Tokens {
		matched := match.Matches(tok, q)
		s.monitor.WindowTested(i, matched)
		if matched {
			result.Add(core.Match{
				Start:  i,
				Tokens: []core.Token{tok},
			})
		}
	}
}

// searchSequence tests every start i with i+len(qs) <= doc.Len(); a query
// longer than the document has no eligible start.
func (s *Searcher) searchSequence(doc *core.Document, qs []core.QueryToken, result *results.SearchResult) {
	size := len(qs)
	for i := 0; i+size <= doc.Len(); i++ {
		window := doc.Tokens[i : i+size]
		matched := match.Window(window, qs)
		s.monitor.WindowTested(i, matched)
		if matched {
			result.Add(core.Match{
				Start:    i,
				Tokens:   slices.Clone(window),
				Sequence: true,
			})
		}
	}
}
