package viceverser

import (
	"fmt"
	"slices"
)

// Token is a word of the host pipeline: read for its normalized form, key
// and tag, written back with the lemma.
type Token struct {
	Surface string
	Norm    string
	Key     Key
	POS     POS

	Lemma    string
	LemmaPOS []POS
	Features FeatureSet
	// Feats is Features serialized with the Lemmatizer separators.
	Feats string
}

// NewToken builds a Token from a surface form and its tag.
func NewToken(surface string, pos POS) Token {
	n := Normalize(surface)
	return Token{Surface: surface, Norm: n, Key: KeyOf(n), POS: pos}
}

// Lemmatize resolves tok and writes the result back into it.
func (l *Lemmatizer) Lemmatize(tok *Token) error {
	r, err := l.Resolve(tok.Norm, tok.Key, tok.POS)
	if err != nil {
		return err
	}
	tok.Lemma = r.Stem
	tok.LemmaPOS = slices.Clone(r.POS)
	tok.Features = r.Features
	tok.Feats = r.Features.Format(l.separators)
	return nil
}

// LemmatizeTokens lemmatizes tokens in order. It stops at the first
// analyzer failure; tokens before it keep their results.
func (l *Lemmatizer) LemmatizeTokens(tokens []Token) error {
	for i := range tokens {
		if err := l.Lemmatize(&tokens[i]); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	return nil
}
