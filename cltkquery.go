// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package cltkquery finds words and word sequences in linguistically
// annotated documents.
//
// An Engine wires together the searcher, the concurrent corpus runner and,
// optionally, Prometheus metrics:
//
//	engine, err := cltkquery.NewEngine(cltkquery.WithPoolSize(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	result, err := engine.Search(doc, core.Word(core.NewQueryToken(core.WithLemma("vera"))))
package cltkquery

import (
	"context"
	"fmt"

	"github.com/clemsciences/cltk-query/core"
	"github.com/clemsciences/cltk-query/corpus"
	"github.com/clemsciences/cltk-query/metrics"
	"github.com/clemsciences/cltk-query/results"
	"github.com/clemsciences/cltk-query/search"
)

// Engine searches single documents and whole corpora with one configuration.
type Engine struct {
	searcher *search.Searcher
	runner   *corpus.Runner
	monitor  *metrics.Monitor
}

// NewEngine builds an engine from the default configuration and opts.
func NewEngine(opts ...ConfigOption) (*Engine, error) {
	cfg := NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	searchOpts := []search.Option{search.WithLogger(cfg.Logger)}

	var monitor *metrics.Monitor
	if cfg.Registerer != nil {
		m, err := metrics.NewMonitor(cfg.Registerer)
		if err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
		monitor = m
		searchOpts = append(searchOpts, search.WithMonitor(m))
	}

	searcher, err := search.NewSearcher(searchOpts...)
	if err != nil {
		return nil, err
	}

	runnerOpts := []corpus.Option{
		corpus.WithPoolSize(cfg.PoolSize),
		corpus.WithLogger(cfg.Logger),
	}
	if cfg.Progress != nil {
		runnerOpts = append(runnerOpts, corpus.WithProgress(cfg.Progress))
	}
	runner, err := corpus.NewRunner(searcher, runnerOpts...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		searcher: searcher,
		runner:   runner,
		monitor:  monitor,
	}, nil
}

// Close releases the corpus worker pool.
func (e *Engine) Close() error {
	e.runner.Release()
	return nil
}

// Search returns the matches of query in a single document.
func (e *Engine) Search(doc *core.Document, query core.Query) (*results.SearchResult, error) {
	return e.searcher.Search(doc, query)
}

// SearchCorpus searches every document concurrently and merges the results.
func (e *Engine) SearchCorpus(ctx context.Context, docs []*core.Document, query core.Query) (*results.ResultSet, error) {
	return e.runner.Run(ctx, docs, query)
}

// Searcher returns the searcher shared by Search and SearchCorpus.
func (e *Engine) Searcher() *search.Searcher {
	return e.searcher
}

// Monitor returns the metrics monitor, or nil when metrics are disabled.
func (e *Engine) Monitor() *metrics.Monitor {
	return e.monitor
}
