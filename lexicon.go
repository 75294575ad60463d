package viceverser

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Analyzer is the morphological analyzer the Lemmatizer consults.
//
// Analyze returns one whitespace-separated analysis per lexical entry, made
// of st:<stem>, po:<tag>, is:<flag> and, for prefixed words, pa:<part>
// morphs. AddWithAffix teaches the analyzer a new word inflected like model;
// it changes the answers of later Spell and Analyze calls.
type Analyzer interface {
	Spell(word string) bool
	Analyze(word string) []string
	AddWithAffix(word, model string) error
}

// Lexicon is an in-memory Analyzer over a full-form lexicon (one line per
// form and analysis). It is safe for concurrent use.
type Lexicon struct {
	mu sync.RWMutex

	// forms maps surface form → analyses, in insertion order.
	forms map[string][]string

	// stems maps st: stem → forms analysed with that stem, used to learn
	// the Model of a model word.
	stems map[string][]Form

	// registered maps lemma → model word for AddWithAffix calls already applied.
	registered map[string]string
}

// NewLexicon returns an empty Lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{
		forms:      make(map[string][]string),
		stems:      make(map[string][]Form),
		registered: make(map[string]string),
	}
}

// Add records morph as an analysis of form. Duplicate analyses are ignored.
func (x *Lexicon) Add(form, morph string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.add(form, morph)
}

func (x *Lexicon) add(form, morph string) {
	morph = strings.Join(strings.Fields(morph), " ")
	if slices.Contains(x.forms[form], morph) {
		return
	}
	x.forms[form] = append(x.forms[form], morph)

	e := ParseEntry(morph)
	if e.Prefixed {
		return
	}
	if st := e.Stem(); st != "" {
		x.stems[st] = append(x.stems[st], Form{Surface: form, Morph: morph})
	}
}

// Spell reports whether word is a known form.
func (x *Lexicon) Spell(word string) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	_, ok := x.forms[word]
	return ok
}

// Analyze returns the analyses of word, nil when unknown.
func (x *Lexicon) Analyze(word string) []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return slices.Clone(x.forms[word])
}

// AddWithAffix adds every form of word, inflected like the model word.
// Registering the same pair twice is a no-op.
func (x *Lexicon) AddWithAffix(word, model string) error {
	if word == "" {
		return ErrEmptyLemma
	}
	x.mu.Lock()
	defer x.mu.Unlock()

	if have, ok := x.registered[word]; ok && have == model {
		return nil
	}
	m, err := x.model(model)
	if err != nil {
		return err
	}
	for _, f := range m.inflect(word) {
		x.add(f.Surface, f.Morph)
	}
	x.registered[word] = model
	return nil
}

// Model returns the paradigm learnt from the forms of the model word.
func (x *Lexicon) Model(name string) (*Model, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.model(name)
}

func (x *Lexicon) model(name string) (*Model, error) {
	forms := x.stems[name]
	if len(forms) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	m := newModel(name)
	for _, f := range forms {
		m.addForm(f.Surface, f.Morph)
	}
	return m, nil
}

// Len returns the number of distinct forms.
func (x *Lexicon) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.forms)
}
