package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/clemsciences/cltk-query/core"
	"github.com/clemsciences/cltk-query/results"
	"github.com/clemsciences/cltk-query/search"
	"github.com/panjf2000/ants/v2"
)

// submitRetryInterval is how long Run waits before resubmitting to a full pool.
const submitRetryInterval = time.Millisecond

// Runner searches a set of documents concurrently.
type Runner struct {
	searcher *search.Searcher
	pool     *ants.Pool
	progress *ProgressTracker
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the number of documents searched at once.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := newPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithProgress reports the number of searched documents to tracker.
func WithProgress(tracker *ProgressTracker) Option {
	return func(r *Runner) error {
		r.progress = tracker
		return nil
	}
}

// newPool creates a pool whose Submit fails with ants.ErrPoolOverload
// instead of blocking when every worker is busy.
func newPool(size int) (*ants.Pool, error) {
	return ants.NewPool(size, ants.WithNonblocking(true))
}

// NewRunner creates a runner backed by searcher.
func NewRunner(searcher *search.Searcher, opts ...Option) (*Runner, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := newPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		searcher: searcher,
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	return r, nil
}

// Run searches every document for query and returns the merged results.
//
// The query and documents are validated before any search starts. A
// document listed twice fails with results.ErrUnsupportedMerge. If ctx is
// cancelled, no further documents are submitted, including while Run waits
// for a free worker, and ctx.Err() is returned once in-flight searches have
// finished.
func (r *Runner) Run(ctx context.Context, docs []*core.Document, query core.Query) (*results.ResultSet, error) {
	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}
	seen := make(map[*core.Document]struct{}, len(docs))
	for i, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if _, dup := seen[doc]; dup {
			return nil, fmt.Errorf("%w: %q listed twice", results.ErrUnsupportedMerge, doc.Name)
		}
		seen[doc] = struct{}{}
	}

	if r.progress != nil {
		r.progress.Start(len(docs))
		defer r.progress.Finish()
	}

	// Each task writes only its own slot.
	found := make([]*results.SearchResult, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		err := r.submit(ctx, func() {
			defer wg.Done()
			found[i], errs[i] = r.searcher.Search(doc, query)
			if r.progress != nil {
				r.progress.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("submitting document %q: %w", doc.Name, err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	set := results.NewResultSet()
	for _, res := range found {
		if err := set.Add(res); err != nil {
			return nil, err
		}
	}

	r.logger.Info("corpus searched",
		"query_id", core.IDFromQuery(query),
		"documents", set.Len(),
		"matches", set.Total(),
	)
	return set, nil
}

// submit hands task to the pool, retrying while every worker is busy.
// It gives up with ctx.Err() once ctx is done.
func (r *Runner) submit(ctx context.Context, task func()) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := r.pool.Submit(task)
		if !errors.Is(err, ants.ErrPoolOverload) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(submitRetryInterval):
		}
	}
}

// Release releases the worker pool.
// The runner should not be used after calling Release.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
