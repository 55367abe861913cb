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


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	cltkquery "github.com/clemsciences/cltk-query"
	"github.com/clemsciences/cltk-query/annotated"
	"github.com/clemsciences/cltk-query/core"
	"github.com/clemsciences/cltk-query/corpus"
	"github.com/clemsciences/cltk-query/metrics"
	"github.com/clemsciences/cltk-query/results"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "cltkquery",
		Usage: "Find words and word sequences in annotated documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Search annotated documents with a structured query",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "doc",
						Aliases:  []string{"d"},
						Usage:    "Path to a YAML corpus file (repeatable)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Path to a YAML query file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of documents searched concurrently",
						Value: 4,
					},
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Report progress on stderr",
					},
					&cli.StringFlag{
						Name:  "metrics-file",
						Usage: "Write search metrics in Prometheus text format to this file",
					},
				},
			},
		},
	}
}

func searchCommand(c *cli.Context) error {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if c.Int("pool-size") <= 0 {
		return fmt.Errorf("pool-size must be greater than 0")
	}

	docs, err := annotated.LoadDocumentFiles(ctx, c.StringSlice("doc")...)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}
	query, err := annotated.LoadQueryFile(c.String("query"))
	if err != nil {
		return fmt.Errorf("failed to load query: %w", err)
	}

	opts := []cltkquery.ConfigOption{
		cltkquery.WithPoolSize(c.Int("pool-size")),
	}
	if c.Bool("progress") {
		opts = append(opts, cltkquery.WithProgress(corpus.NewProgressTracker(c.App.ErrWriter, 100)))
	}
	var reg *prometheus.Registry
	if c.String("metrics-file") != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, cltkquery.WithRegisterer(reg))
	}

	engine, err := cltkquery.NewEngine(opts...)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	slog.Debug("searching corpus",
		"documents", len(docs),
		"query_id", core.IDFromQuery(query),
		"sequence", query.IsSequence(),
	)

	set, err := engine.SearchCorpus(ctx, docs, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if err := printResults(c.App.Writer, set); err != nil {
		return err
	}

	if reg != nil {
		if err := metrics.WriteTextfile(c.String("metrics-file"), reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// printResults writes one line per match, document then position order:
// document name, start-end token span and the matched surface forms.
func printResults(w io.Writer, set *results.ResultSet) error {
	for _, doc := range set.Documents() {
		matches, err := set.Lookup(doc)
		if err != nil {
			return err
		}
		for _, m := range matches {
			forms := make([]string, m.Len())
			for i, tok := range m.Tokens {
				forms[i], _ = tok.Get(core.AttributeString)
			}
			if _, err := fmt.Fprintf(w, "%s\t%d-%d\t%s\n", doc.Name, m.Start, m.End()-1, strings.Join(forms, " ")); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "Found %d matches in %d documents\n", set.Total(), set.Len())
	return err
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
