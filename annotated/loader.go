package annotated

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/clemsciences/cltk-query/core"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type attributesYAML struct {
	String                *string `yaml:"string"`
	Lemma                 *string `yaml:"lemma"`
	POS                   *string `yaml:"pos"`
	PhoneticTranscription *string `yaml:"phonetic_transcription"`
}

func (a attributesYAML) attributes() core.Attributes {
	return core.Attributes{
		String:                a.String,
		Lemma:                 a.Lemma,
		POS:                   a.POS,
		PhoneticTranscription: a.PhoneticTranscription,
	}
}

type documentYAML struct {
	Name   string           `yaml:"name"`
	Tokens []attributesYAML `yaml:"tokens"`
}

type corpusYAML struct {
	Documents []documentYAML `yaml:"documents"`
}

type queryYAML struct {
	Token    *attributesYAML   `yaml:"token"`
	Sequence *[]attributesYAML `yaml:"sequence"`
}

// LoadDocuments decodes a corpus stream. Unknown keys are rejected.
// Every YAML document in the stream contributes its documents, in order.
// An empty input yields no documents.
func LoadDocuments(r io.Reader) ([]*core.Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []*core.Document
	for {
		var c corpusYAML
		if err := dec.Decode(&c); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, fmt.Errorf("decoding documents: %w", err)
		}

		for _, d := range c.Documents {
			tokens := make([]core.Token, len(d.Tokens))
			for j, t := range d.Tokens {
				tokens[j] = core.Token{Attributes: t.attributes()}
			}
			docs = append(docs, core.NewDocument(d.Name, tokens...))
		}
	}
}

// LoadDocumentFiles reads several corpus files in parallel and returns
// their documents in argument order.
func LoadDocumentFiles(ctx context.Context, paths ...string) ([]*core.Document, error) {
	perFile := make([][]*core.Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()

			docs, err := LoadDocuments(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			perFile[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []*core.Document
	for _, d := range perFile {
		docs = append(docs, d...)
	}
	return docs, nil
}

// LoadQuery decodes a query file holding a single YAML document. Exactly
// one of token or sequence must be given, and a sequence must not be
// empty; anything else fails with core.ErrInvalidQueryShape.
func LoadQuery(r io.Reader) (core.Query, error) {
	var q queryYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&q); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Query{}, fmt.Errorf("%w: empty query", core.ErrInvalidQueryShape)
		}
		return core.Query{}, fmt.Errorf("decoding query: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return core.Query{}, fmt.Errorf("decoding query: %w", err)
		}
		return core.Query{}, fmt.Errorf("%w: more than one query in file", core.ErrInvalidQueryShape)
	}

	switch {
	case q.Token != nil && q.Sequence != nil:
		return core.Query{}, fmt.Errorf("%w: both token and sequence given", core.ErrInvalidQueryShape)
	case q.Token != nil:
		return core.Word(core.QueryToken{Attributes: q.Token.attributes()}), nil
	case q.Sequence != nil:
		if len(*q.Sequence) == 0 {
			return core.Query{}, fmt.Errorf("%w: empty sequence", core.ErrInvalidQueryShape)
		}
		qs := make([]core.QueryToken, len(*q.Sequence))
		for i, t := range *q.Sequence {
			qs[i] = core.QueryToken{Attributes: t.attributes()}
		}
		return core.Sequence(qs...), nil
	default:
		return core.Query{}, fmt.Errorf("%w: neither token nor sequence given", core.ErrInvalidQueryShape)
	}
}

// LoadQueryFile reads a query from path.
func LoadQueryFile(path string) (core.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Query{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return LoadQuery(f)
}
