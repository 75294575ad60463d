// Package viceverser assigns a lemma and morphological features to the
// tokens of a POS-tagged French text.
//
// Each word is looked up in a morphological analyzer; analyzer entries are
// disambiguated with a per-tag priority list that tolerates tagging errors,
// and words the analyzer does not know go through rule-based fallbacks (for
// verbs, the reconstructed infinitive is registered with the analyzer).
// Hyphenated compounds are lemmatized segment by segment. Every answer is
// memoized per part of speech.
//
// Resolution may mutate the analyzer: it is the one side effect of Resolve
// besides the cache.
package viceverser

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Data file names read by New.
const (
	LexiconFile    = "lexique.tsv"
	LookupFile     = "lookup.tsv"
	ExceptionsFile = "exceptions.tsv"
)

// Lemmatizer resolves lemmas. It is safe for concurrent use: every call
// holds one lock over the cache and the analyzer, since a verb registration
// and the cache write that follows it must happen together.
type Lemmatizer struct {
	mu sync.Mutex

	analyzer      Analyzer
	reconstructor Reconstructor
	priorities    *Priorities
	lookup        FeatureLookup
	exceptions    Exceptions
	separators    Separators
	state         *State

	logger   *zap.Logger
	observer Observer
}

// Option configures a Lemmatizer.
type Option func(*Lemmatizer)

// WithReconstructor sets the infinitive reconstructor used for unknown verbs.
func WithReconstructor(r Reconstructor) Option {
	return func(l *Lemmatizer) {
		l.reconstructor = r
	}
}

// WithPriorities sets the priority table.
func WithPriorities(p *Priorities) Option {
	return func(l *Lemmatizer) {
		l.priorities = p
	}
}

// WithFeatureLookup sets the flag → feature table.
func WithFeatureLookup(lookup FeatureLookup) Option {
	return func(l *Lemmatizer) {
		l.lookup = lookup
	}
}

// WithExceptions replaces the seeded exceptions.
func WithExceptions(exc Exceptions) Option {
	return func(l *Lemmatizer) {
		l.exceptions = exc
	}
}

// WithSeparators sets the separators used to fill Token.Feats.
func WithSeparators(sep Separators) Option {
	return func(l *Lemmatizer) {
		l.separators = sep
	}
}

// WithState makes the Lemmatizer use a caller-owned State. The caller must
// not share it with another Lemmatizer.
func WithState(s *State) Option {
	return func(l *Lemmatizer) {
		l.state = s
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Lemmatizer) {
		l.logger = logger
	}
}

// WithObserver sets the observer notified of cache lookups, resolutions and
// registrations.
func WithObserver(o Observer) Option {
	return func(l *Lemmatizer) {
		l.observer = o
	}
}

// NewLemmatizer returns a Lemmatizer over analyzer, with the French
// defaults for everything not set by opts. Exceptions are seeded in the
// cache right away.
func NewLemmatizer(analyzer Analyzer, opts ...Option) *Lemmatizer {
	l := &Lemmatizer{
		analyzer:   analyzer,
		separators: DefaultSeparators,
		logger:     zap.NewNop(),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.reconstructor == nil {
		l.reconstructor = NewSuffixReconstructor()
	}
	if l.priorities == nil {
		l.priorities = DefaultPriorities()
	}
	if l.lookup == nil {
		l.lookup = DefaultFeatureLookup()
	}
	if l.exceptions == nil {
		l.exceptions = DefaultExceptions()
	}
	if l.state == nil {
		l.state = NewState()
	}
	l.seed()
	return l
}

// New loads the data files of dataDir and returns a Lemmatizer over the
// loaded lexicon. lexique.tsv is required; lookup.tsv replaces the default
// feature table and exceptions.tsv extends the default exceptions when
// present. Options passed in opts win over the loaded data.
func New(dataDir string, opts ...Option) (*Lemmatizer, error) {
	lex, err := LoadLexicon(filepath.Join(dataDir, LexiconFile))
	if err != nil {
		return nil, err
	}

	var base []Option
	lookupPath := filepath.Join(dataDir, LookupFile)
	if fileExists(lookupPath) {
		lookup, err := LoadFeatureLookup(lookupPath, DefaultSeparators)
		if err != nil {
			return nil, err
		}
		base = append(base, WithFeatureLookup(lookup))
	}
	excPath := filepath.Join(dataDir, ExceptionsFile)
	if fileExists(excPath) {
		exc, err := LoadExceptions(excPath)
		if err != nil {
			return nil, err
		}
		base = append(base, WithExceptions(DefaultExceptions().Merge(exc)))
	}
	return NewLemmatizer(lex, append(base, opts...)...), nil
}

// seed loads the exceptions into the plain (non-compound) tables.
func (l *Lemmatizer) seed() {
	for pos, forms := range l.exceptions {
		c := Context{POS: pos}
		for form, lemma := range forms {
			l.state.setIfAbsent(c, KeyOf(form), newRecord(lemma, nil, FeatureSet{}, SourceException))
		}
	}
}

// Priorities returns the priority table.
func (l *Lemmatizer) Priorities() *Priorities {
	return l.priorities
}

// Separators returns the feature separators.
func (l *Lemmatizer) Separators() Separators {
	return l.separators
}

// CacheSize returns the number of cached records over all tables.
func (l *Lemmatizer) CacheSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Size()
}

// Cached returns the record cached for key under c, without resolving.
func (l *Lemmatizer) Cached(c Context, key Key) (*Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Get(c, key)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// wrapAnalyzerErr marks an error as a structural analyzer failure.
func wrapAnalyzerErr(word string, err error) error {
	return fmt.Errorf("resolve %q: %w", word, err)
}
