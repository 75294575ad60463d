package viceverser

import (
	"strings"

	"go.uber.org/zap"
)

// compoundSep joins the segments of a compound word.
const compoundSep = "-"

// Resolve returns the lemma record of word, a normalized form whose cache
// key is key, tagged pos. Words containing a hyphen are resolved as
// compounds.
//
// Resolve is deterministic for a given cache and analyzer state. It writes
// the cache, and may register a new verb with the analyzer; the returned
// error is always a structural failure of the analyzer or of the
// reconstructor, never an unknown word.
func (l *Lemmatizer) Resolve(word string, key Key, pos POS) (*Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if strings.Contains(word, compoundSep) {
		return l.resolveCompound(word, key, pos)
	}
	return l.resolveWord(word, key, Context{POS: pos})
}

// ResolveWord resolves word as a simple word, even when it holds a hyphen.
func (l *Lemmatizer) ResolveWord(word string, key Key, pos POS) (*Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resolveWord(word, key, Context{POS: pos})
}

// resolveWord runs cache → analyzer → rule fallback for a simple word.
func (l *Lemmatizer) resolveWord(word string, key Key, c Context) (*Record, error) {
	if r, ok := l.state.Get(c, key); ok {
		l.observer.CacheLookup(c, true)
		return r, nil
	}
	l.observer.CacheLookup(c, false)

	if r := l.searchAnalyzer(word, c); r != nil {
		l.state.Set(c, key, r)
		l.observer.Resolved(c, r.Source)
		return r, nil
	}

	lemma, feats, err := l.ruleLemmatize(word, c)
	if err != nil {
		return nil, wrapAnalyzerErr(word, err)
	}
	l.logger.Debug("rule fallback",
		zap.String("word", word),
		zap.Stringer("context", c),
		zap.String("lemma", lemma),
	)
	r := newRecord(lemma, nil, feats, SourceRule)
	l.state.Set(c, key, r)
	l.observer.Resolved(c, SourceRule)
	return r, nil
}

// searchAnalyzer looks word up in the analyzer. Entries are grouped by the
// tags they claim, the first entry winning for a tag, then the priority
// order of c picks the group. Prefixed analyses are taken as soon as they
// are met. It returns nil when the word is unknown or when no entry matches
// the priority order.
func (l *Lemmatizer) searchAnalyzer(word string, c Context) *Record {
	if !l.analyzer.Spell(word) {
		return nil
	}

	var byPOS [numPOS]*Entry
	found := false
	for _, morph := range l.analyzer.Analyze(word) {
		e := ParseEntry(morph)
		if e.Prefixed {
			if stem, pe, ok := prefixedStem(morph); ok {
				return newRecord(stem, pe.Tags, NormalizeFeatures(pe.Flags, l.lookup), SourcePrefix)
			}
		}
		if e.Stem() == "" {
			continue
		}
		for _, t := range e.Tags {
			if byPOS[t] == nil {
				byPOS[t] = &e
				found = true
			}
		}
	}
	if !found {
		return nil
	}

	for _, t := range l.priorities.Order(c) {
		if e := byPOS[t]; e != nil {
			return newRecord(e.Stem(), e.Tags, NormalizeFeatures(e.Flags, l.lookup), SourceLexicon)
		}
	}
	l.logger.Debug("no analysis matches priority order",
		zap.String("word", word),
		zap.Stringer("context", c),
	)
	return nil
}

// resolveCompound lemmatizes each segment of a hyphenated word under the
// compound variant of pos and rejoins the lemmas.
func (l *Lemmatizer) resolveCompound(word string, key Key, pos POS) (*Record, error) {
	c := Context{POS: pos}
	if r, ok := l.state.Get(c, key); ok {
		l.observer.CacheLookup(c, true)
		return r, nil
	}
	l.observer.CacheLookup(c, false)

	var segments []string
	for _, s := range strings.Split(word, compoundSep) {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return newRecord(compoundSep, nil, FeatureSet{}, SourceDegenerate), nil
	}

	sc := Context{POS: pos, Compound: true}
	stems := make([]string, len(segments))
	feats := make([]FeatureSet, len(segments))
	var last *Record
	for i, s := range segments {
		r, err := l.resolveWord(s, KeyOf(s), sc)
		if err != nil {
			return nil, err
		}
		stems[i] = r.Stem
		feats[i] = r.Features
		last = r
	}

	lemma := strings.Join(stems, compoundSep)
	lemmaKey := KeyOf(lemma)
	if r, ok := l.state.Get(c, lemmaKey); ok {
		l.observer.CacheLookup(c, true)
		l.logger.Debug("compound aliased",
			zap.String("word", word),
			zap.String("lemma", r.Stem),
		)
		l.state.Set(c, key, r)
		return r, nil
	}

	r := newRecord(lemma, last.POS, FeatureSet{}.Merge(feats...), SourceCompound)
	l.state.Set(c, key, r)
	l.state.Set(c, lemmaKey, r)
	l.observer.Resolved(c, SourceCompound)
	return r, nil
}
