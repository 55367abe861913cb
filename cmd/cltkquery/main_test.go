package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testCorpus = `
documents:
  - name: voluspa-1
    tokens:
      - {string: ek, lemma: ek, pos: PRON}
      - {string: er, lemma: vera, pos: VERB}
      - {string: armr}
  - name: voluspa-2
    tokens:
      - {string: er, lemma: vera, pos: VERB}
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"cltkquery"}, args...))
	return out.String(), err
}

func TestSearchCommandFlags(t *testing.T) {
	app := newApp()
	cmd := app.Commands[0]
	require.Equal(t, "search", cmd.Name)

	t.Run("doc and query are required", func(t *testing.T) {
		var docFlag *cli.StringSliceFlag
		var queryFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			switch f := flag.(type) {
			case *cli.StringSliceFlag:
				if f.Name == "doc" {
					docFlag = f
				}
			case *cli.StringFlag:
				if f.Name == "query" {
					queryFlag = f
				}
			}
		}
		require.NotNil(t, docFlag)
		require.NotNil(t, queryFlag)
		assert.True(t, docFlag.Required)
		assert.True(t, queryFlag.Required)
	})

	t.Run("missing query flag", func(t *testing.T) {
		_, err := runApp(t, "search", "--doc", "/tmp/does-not-matter.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := runApp(t, "--log-level", "loud", "search", "--doc", "a", "--query", "b")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	docs := writeFile(t, dir, "corpus.yaml", testCorpus)

	t.Run("single token query", func(t *testing.T) {
		query := writeFile(t, dir, "word.yaml", "token: {lemma: vera}\n")

		out, err := runApp(t, "--log-level", "error", "search", "--doc", docs, "--query", query)
		require.NoError(t, err)
		assert.Contains(t, out, "voluspa-1\t1-1\ter\n")
		assert.Contains(t, out, "voluspa-2\t0-0\ter\n")
		assert.Contains(t, out, "Found 2 matches in 2 documents")
	})

	t.Run("sequence query", func(t *testing.T) {
		query := writeFile(t, dir, "seq.yaml", "sequence:\n  - {pos: PRON}\n  - {pos: VERB}\n")

		out, err := runApp(t, "--log-level", "error", "search", "--doc", docs, "--query", query)
		require.NoError(t, err)
		assert.Contains(t, out, "voluspa-1\t0-1\tek er\n")
		assert.Contains(t, out, "Found 1 matches in 2 documents")
	})

	t.Run("writes metrics file", func(t *testing.T) {
		query := writeFile(t, dir, "metrics.yaml", "token: {string: er}\n")
		metricsPath := filepath.Join(dir, "search.prom")

		_, err := runApp(t, "--log-level", "error", "search",
			"--doc", docs, "--query", query, "--metrics-file", metricsPath, "--progress")
		require.NoError(t, err)

		data, err := os.ReadFile(metricsPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "cltkquery_windows_matched_total 2")
	})

	t.Run("invalid query shape", func(t *testing.T) {
		query := writeFile(t, dir, "bad.yaml", "sequence: []\n")

		_, err := runApp(t, "--log-level", "error", "search", "--doc", docs, "--query", query)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid query shape")
	})

	t.Run("invalid pool size", func(t *testing.T) {
		query := writeFile(t, dir, "word2.yaml", "token: {lemma: vera}\n")

		_, err := runApp(t, "search", "--doc", docs, "--query", query, "--pool-size", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pool-size")
	})
}
