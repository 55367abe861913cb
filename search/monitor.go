package search

import (
	"github.com/clemsciences/cltk-query/core"
	"github.com/clemsciences/cltk-query/results"
)

// SearchMonitor provides hooks to observe the search process.
// A monitor shared by a Searcher used from several goroutines must be safe
// for concurrent use.
type SearchMonitor interface {
	Start(doc *core.Document, query core.Query)
	WindowTested(start int, matched bool)
	Finish(result *results.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Document, _ core.Query) {}
func (n *noopMonitor) WindowTested(_ int, _ bool)           {}
func (n *noopMonitor) Finish(_ *results.SearchResult)       {}
