package corpus

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clemsciences/cltk-query/core"
	"github.com/clemsciences/cltk-query/results"
	"github.com/clemsciences/cltk-query/search"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordsDoc(name string, words ...string) *core.Document {
	tokens := make([]core.Token, len(words))
	for i, w := range words {
		tokens[i] = core.NewToken(core.WithString(w))
	}
	return core.NewDocument(name, tokens...)
}

func newRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()
	searcher, err := search.NewSearcher()
	require.NoError(t, err)
	r, err := NewRunner(searcher, opts...)
	require.NoError(t, err)
	t.Cleanup(r.Release)
	return r
}

func TestNewRunner(t *testing.T) {
	searcher, err := search.NewSearcher()
	require.NoError(t, err)

	t.Run("valid configuration", func(t *testing.T) {
		r, err := NewRunner(searcher)
		require.NoError(t, err)
		assert.NotNil(t, r)
		r.Release()
	})

	t.Run("with pool size and logger", func(t *testing.T) {
		r, err := NewRunner(searcher, WithPoolSize(2), WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.Equal(t, 2, r.pool.Cap())
		r.Release()
	})

	t.Run("pool size below one is clamped", func(t *testing.T) {
		r, err := NewRunner(searcher, WithPoolSize(0))
		require.NoError(t, err)
		assert.Equal(t, 1, r.pool.Cap())
		r.Release()
	})

	t.Run("nil searcher", func(t *testing.T) {
		_, err := NewRunner(nil)
		assert.Equal(t, ErrSearcherRequired, err)
	})
}

func TestRun(t *testing.T) {
	r := newRunner(t, WithPoolSize(3))

	d1 := wordsDoc("d1", "ek", "er", "armr")
	d2 := wordsDoc("d2", "er", "er")
	d3 := wordsDoc("d3", "armr")
	docs := []*core.Document{d1, d2, d3}

	set, err := r.Run(context.Background(), docs, core.Word(core.NewQueryToken(core.WithString("er"))))
	require.NoError(t, err)

	assert.Equal(t, docs, set.Documents())
	assert.Equal(t, 3, set.Total())

	m1, err := set.Lookup(d1)
	require.NoError(t, err)
	assert.Len(t, m1, 1)

	m3, err := set.Lookup(d3)
	require.NoError(t, err)
	assert.Empty(t, m3)
}

func TestRun_MatchesSequentialSearch(t *testing.T) {
	r := newRunner(t, WithPoolSize(4))
	searcher, err := search.NewSearcher()
	require.NoError(t, err)

	docs := make([]*core.Document, 50)
	for i := range docs {
		docs[i] = wordsDoc(fmt.Sprintf("d%d", i), pairs(i%5)...)
	}
	query := core.Sequence(
		core.NewQueryToken(core.WithString("a")),
		core.NewQueryToken(core.WithString("b")),
	)

	set, err := r.Run(context.Background(), docs, query)
	require.NoError(t, err)

	want := results.NewResultSet()
	for _, doc := range docs {
		res, err := searcher.Search(doc, query)
		require.NoError(t, err)
		require.NoError(t, want.Add(res))
	}
	assert.Equal(t, want.Total(), set.Total())
	assert.Equal(t, want.Documents(), set.Documents())
	assert.Equal(t, want.Flatten(), set.Flatten())
}

// pairs returns n repetitions of "a", "b".
func pairs(n int) []string {
	var out []string
	for i := 0; i < n; i++ {
		out = append(out, "a", "b")
	}
	return out
}

func TestRun_Errors(t *testing.T) {
	r := newRunner(t)
	doc := wordsDoc("d1", "ek")
	query := core.Word(core.NewQueryToken(core.WithString("ek")))

	t.Run("invalid query", func(t *testing.T) {
		_, err := r.Run(context.Background(), []*core.Document{doc}, core.Query{})
		assert.ErrorIs(t, err, core.ErrInvalidQueryShape)
	})

	t.Run("nil document", func(t *testing.T) {
		_, err := r.Run(context.Background(), []*core.Document{doc, nil}, query)
		assert.ErrorIs(t, err, core.ErrInvalidDocument)
	})

	t.Run("duplicate document", func(t *testing.T) {
		_, err := r.Run(context.Background(), []*core.Document{doc, doc}, query)
		assert.ErrorIs(t, err, results.ErrUnsupportedMerge)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Run(ctx, []*core.Document{doc}, query)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("released pool", func(t *testing.T) {
		released := newRunner(t)
		released.Release()
		_, err := released.Run(context.Background(), []*core.Document{doc}, query)
		assert.ErrorIs(t, err, ants.ErrPoolClosed)
	})
}

func TestRun_EmptyCorpus(t *testing.T) {
	r := newRunner(t)

	set, err := r.Run(context.Background(), nil, core.Word(core.NewQueryToken()))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 0, set.Total())
}

func TestRun_Progress(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 1)
	r := newRunner(t, WithProgress(tracker))

	docs := []*core.Document{wordsDoc("d1", "a"), wordsDoc("d2", "a")}
	_, err := r.Run(context.Background(), docs, core.Word(core.NewQueryToken()))
	require.NoError(t, err)

	assert.Equal(t, 2, tracker.Current())
	assert.Contains(t, buf.String(), "2/2 documents")
}

// blockingMonitor holds every search in Start until release is closed.
type blockingMonitor struct {
	started atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (m *blockingMonitor) Start(_ *core.Document, _ core.Query) {
	if m.started.Add(1) == 1 {
		close(m.entered)
	}
	<-m.release
}

func (m *blockingMonitor) WindowTested(_ int, _ bool)     {}
func (m *blockingMonitor) Finish(_ *results.SearchResult) {}

func TestRun_CancelWhilePoolIsFull(t *testing.T) {
	monitor := &blockingMonitor{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	searcher, err := search.NewSearcher(search.WithMonitor(monitor))
	require.NoError(t, err)
	r, err := NewRunner(searcher, WithPoolSize(1))
	require.NoError(t, err)
	defer r.Release()

	docs := []*core.Document{wordsDoc("d1", "a"), wordsDoc("d2", "a"), wordsDoc("d3", "a")}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx, docs, core.Word(core.NewQueryToken()))
		done <- err
	}()

	// The only worker is busy with d1, so d2 is waiting to be submitted.
	<-monitor.entered
	cancel()
	time.Sleep(20 * time.Millisecond)
	close(monitor.release)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, int32(1), monitor.started.Load(), "no document is submitted after cancellation")
}
