package match

import "github.com/clemsciences/cltk-query/core"

// Matches reports whether tok satisfies every constraint set on q.
func Matches(tok core.Token, q core.QueryToken) bool {
	for _, attr := range core.AttributeOrder {
		want, ok := q.Get(attr)
		if !ok {
			continue
		}
		got, ok := tok.Get(attr)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Window reports whether tokens and qs have the same length and every
// token satisfies the query token at the same position.
func Window(tokens []core.Token, qs []core.QueryToken) bool {
	if len(tokens) != len(qs) {
		return false
	}
	matched := true
	for j := 0; matched && j < len(qs); j++ {
		matched = matched && Matches(tokens[j], qs[j])
	}
	return matched
}
