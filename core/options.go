package core

// AttributeOption sets one annotation on an Attributes value.
type AttributeOption func(*Attributes)

// WithString sets the surface form.
func WithString(s string) AttributeOption {
	return func(a *Attributes) {
		a.String = &s
	}
}

// WithLemma sets the lemma.
func WithLemma(s string) AttributeOption {
	return func(a *Attributes) {
		a.Lemma = &s
	}
}

// WithPOS sets the part-of-speech tag.
func WithPOS(s string) AttributeOption {
	return func(a *Attributes) {
		a.POS = &s
	}
}

// WithPhoneticTranscription sets the phonetic transcription.
func WithPhoneticTranscription(s string) AttributeOption {
	return func(a *Attributes) {
		a.PhoneticTranscription = &s
	}
}

// NewAttributes builds an Attributes value from options.
func NewAttributes(opts ...AttributeOption) Attributes {
	var a Attributes
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// NewToken builds a token. Its Index is assigned by NewDocument.
func NewToken(opts ...AttributeOption) Token {
	return Token{Attributes: NewAttributes(opts...)}
}

// NewQueryToken builds a query token.
func NewQueryToken(opts ...AttributeOption) QueryToken {
	return QueryToken{Attributes: NewAttributes(opts...)}
}
