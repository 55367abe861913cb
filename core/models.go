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


package core

import "slices"

// Attribute identifies one linguistic annotation carried by a token.
type Attribute int

const (
	// AttributePOS is the part-of-speech tag.
	AttributePOS Attribute = iota + 1
	// AttributeLemma is the dictionary form.
	AttributeLemma
	// AttributeString is the surface form as it appears in the text.
	AttributeString
	// AttributePhoneticTranscription is the phonetic transcription.
	AttributePhoneticTranscription
)

// AttributeOrder is the order in which query constraints are checked.
var AttributeOrder = []Attribute{
	AttributePOS,
	AttributeLemma,
	AttributeString,
	AttributePhoneticTranscription,
}

// String returns the attribute name used in logs and input files.
func (a Attribute) String() string {
	switch a {
	case AttributePOS:
		return "pos"
	case AttributeLemma:
		return "lemma"
	case AttributeString:
		return "string"
	case AttributePhoneticTranscription:
		return "phonetic_transcription"
	default:
		return "unknown"
	}
}

// Attributes holds the optional annotations of a token.
// A nil field is unset, which is not the same thing as an empty string.
type Attributes struct {
	String                *string
	Lemma                 *string
	POS                   *string
	PhoneticTranscription *string
}

// Get returns the value of attr and whether it is set.
func (a Attributes) Get(attr Attribute) (string, bool) {
	var v *string
	switch attr {
	case AttributePOS:
		v = a.POS
	case AttributeLemma:
		v = a.Lemma
	case AttributeString:
		v = a.String
	case AttributePhoneticTranscription:
		v = a.PhoneticTranscription
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// IsEmpty reports whether no attribute is set.
func (a Attributes) IsEmpty() bool {
	return a.String == nil && a.Lemma == nil && a.POS == nil && a.PhoneticTranscription == nil
}

// Token is one annotated word of a document.
// Tokens are produced upstream and treated as read-only here.
type Token struct {
	Attributes
	Index int // Position of the token inside its document
}

// QueryToken is a set of constraints on a single token.
// A query token with nothing set matches every token.
type QueryToken struct {
	Attributes
}

// Document is an ordered, fixed sequence of tokens.
// Documents are compared by pointer identity: two documents with the same
// tokens are still different documents.
type Document struct {
	Name   string
	Tokens []Token
}

// NewDocument creates a document and stamps each token with its position.
func NewDocument(name string, tokens ...Token) *Document {
	doc := &Document{
		Name:   name,
		Tokens: slices.Clone(tokens),
	}
	for i := range doc.Tokens {
		doc.Tokens[i].Index = i
	}
	return doc
}

// Len returns the number of tokens in the document.
func (d *Document) Len() int {
	return len(d.Tokens)
}

// Strings returns the surface forms of the document's tokens.
// Tokens without a surface form yield an empty string.
func (d *Document) Strings() []string {
	out := make([]string, len(d.Tokens))
	for i, tok := range d.Tokens {
		out[i], _ = tok.Get(AttributeString)
	}
	return out
}

// Query is either a single query token or an ordered sequence of query
// tokens. The zero value is not a valid query.
type Query struct {
	tokens   []QueryToken
	sequence bool
}

// Word builds a query matching one token at a time.
func Word(q QueryToken) Query {
	return Query{tokens: []QueryToken{q}}
}

// Sequence builds a query matching a contiguous run of len(qs) tokens.
func Sequence(qs ...QueryToken) Query {
	return Query{tokens: slices.Clone(qs), sequence: true}
}

// IsSequence reports whether the query matches runs of tokens.
func (q Query) IsSequence() bool {
	return q.sequence
}

// Len returns the number of query tokens.
func (q Query) Len() int {
	return len(q.tokens)
}

// Tokens returns a copy of the query tokens.
func (q Query) Tokens() []QueryToken {
	return slices.Clone(q.tokens)
}

// Token returns the i-th query token.
func (q Query) Token(i int) QueryToken {
	return q.tokens[i]
}

// Match is a contiguous, in-order slice of a document's tokens that
// satisfied a query. It mirrors the shape of the query that produced it.
type Match struct {
	Start    int
	Tokens   []Token
	Sequence bool
}

// Token returns the first matched token, which is the only one for
// single-token matches.
func (m Match) Token() Token {
	return m.Tokens[0]
}

// Len returns the number of matched tokens.
func (m Match) Len() int {
	return len(m.Tokens)
}

// End returns the position one past the last matched token.
func (m Match) End() int {
	return m.Start + len(m.Tokens)
}
