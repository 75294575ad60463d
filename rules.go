package viceverser

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// infinitiveSuffix marks forms of regular verbs that are already infinitives.
const infinitiveSuffix = "er"

// minVerbRunes is the shortest form an infinitive is reconstructed from.
// Shorter forms would register a bare ending ("er") as a verb.
const minVerbRunes = 2

// Raw number flags given to rule-lemmatized nouns and adjectives.
const (
	flagPlural   = "is:pl"
	flagSingular = "is:sg"
)

// ruleLemmatize is the last resort for words the analyzer cannot resolve.
// It always produces a lemma:
//
//   - verb, aux: unless the word already ends in -er or is shorter than
//     minVerbRunes, the infinitive is reconstructed, registered with the
//     analyzer like its model word, and the word is analysed again for its
//     features;
//   - noun, adj: one final s or x is removed (plural), otherwise the word is
//     kept (singular);
//   - anything else, compound segments included: the word itself.
//
// Only a failed reconstruction or registration returns an error.
func (l *Lemmatizer) ruleLemmatize(word string, c Context) (string, FeatureSet, error) {
	if c.Compound {
		return word, FeatureSet{}, nil
	}
	switch c.POS {
	case POSVerb, POSAuxiliary:
		if strings.HasSuffix(word, infinitiveSuffix) || utf8.RuneCountInString(word) < minVerbRunes {
			return word, FeatureSet{}, nil
		}
		return l.registerVerb(word)

	case POSNoun, POSAdjective:
		if len(word) > 1 && (strings.HasSuffix(word, "s") || strings.HasSuffix(word, "x")) {
			return word[:len(word)-1], NormalizeFeatures([]string{flagPlural}, l.lookup), nil
		}
		return word, NormalizeFeatures([]string{flagSingular}, l.lookup), nil
	}
	return word, FeatureSet{}, nil
}

// registerVerb reconstructs the infinitive of word, teaches it to the
// analyzer and reads the features of word from the new analyses.
func (l *Lemmatizer) registerVerb(word string) (string, FeatureSet, error) {
	lemma, model, err := l.reconstructor.Reconstruct(word)
	if err != nil {
		return "", FeatureSet{}, err
	}
	if lemma == "" {
		return "", FeatureSet{}, ErrEmptyLemma
	}

	if have, ok := l.state.Registered(lemma); !ok || have != model {
		if err := l.analyzer.AddWithAffix(lemma, model); err != nil {
			return "", FeatureSet{}, err
		}
		l.state.markRegistered(lemma, model)
		l.observer.Registered(lemma, model)
		l.logger.Info("registered verb",
			zap.String("word", word),
			zap.String("lemma", lemma),
			zap.String("model", model),
		)
	}

	var flags []string
	for _, morph := range l.analyzer.Analyze(word) {
		e := ParseEntry(morph)
		if e.Stem() == lemma {
			flags = append(flags, e.Flags...)
		}
	}
	return lemma, NormalizeFeatures(flags, l.lookup), nil
}
