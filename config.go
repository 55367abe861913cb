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


package cltkquery

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/clemsciences/cltk-query/corpus"
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the settings of an Engine.
type Config struct {
	// PoolSize is the number of documents searched concurrently by
	// SearchCorpus.
	// Default: runtime.NumCPU()
	PoolSize int

	// Logger receives search and corpus log lines.
	// Default: slog.Default()
	Logger *slog.Logger

	// Registerer, when set, receives the search metrics collectors.
	Registerer prometheus.Registerer

	// Progress, when set, reports corpus progress.
	Progress *corpus.ProgressTracker
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithPoolSize sets the corpus worker pool size.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRegisterer enables Prometheus metrics on reg.
func WithRegisterer(reg prometheus.Registerer) ConfigOption {
	return func(c *Config) {
		c.Registerer = reg
	}
}

// WithProgress reports corpus progress to tracker.
func WithProgress(tracker *corpus.ProgressTracker) ConfigOption {
	return func(c *Config) {
		c.Progress = tracker
	}
}

// DefaultConfig returns a Config with one worker per CPU, the default
// logger and no metrics.
func DefaultConfig() *Config {
	return &Config{
		PoolSize: runtime.NumCPU(),
		Logger:   slog.Default(),
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//   cfg := NewConfig(
//       WithPoolSize(4),
//       WithRegisterer(prometheus.NewRegistry()),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.PoolSize < 1 {
		return errors.New("cltkquery config: PoolSize must be at least 1")
	}
	if c.Logger == nil {
		return errors.New("cltkquery config: Logger is required")
	}
	return nil
}
