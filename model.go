package viceverser

import "strings"

// Rule is one inflection rule of a Model: remove Strip runes from the end of
// the base form, then append Append. Morph holds the morphs of the produced
// form, without its st: stem.
type Rule struct {
	Strip  int
	Append string
	Morph  string
}

// Model represents an inflection paradigm learnt from a model word: one
// rule per lexicon entry whose stem is that word. Registering a new lemma
// "like" a model word applies the model's rules to it, the way a hunspell
// affix class is shared between dictionary words.
type Model struct {
	// Name is the model word (e.g. "aimer", "finir").
	Name  string
	Rules []Rule
}

// newModel creates an empty Model with the given name.
func newModel(name string) *Model {
	return &Model{Name: name}
}

// addForm derives the rule turning the model word into form and records it.
// Duplicate rules are ignored.
func (m *Model) addForm(form, morph string) {
	base := []rune(m.Name)
	f := []rune(form)
	p := commonPrefix(base, f)
	r := Rule{
		Strip:  len(base) - p,
		Append: string(f[p:]),
		Morph:  stripStems(morph),
	}
	for _, have := range m.Rules {
		if have == r {
			return
		}
	}
	m.Rules = append(m.Rules, r)
}

// commonPrefix returns the length in runes of the common prefix of a and b.
func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// stripStems removes the st: morphs from morph.
func stripStems(morph string) string {
	fields := strings.Fields(morph)
	out := fields[:0]
	for _, f := range fields {
		if !strings.HasPrefix(f, "st:") {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}
