package viceverser

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/kljensen/snowball"
)

// Reconstructor rebuilds the infinitive of an unknown conjugated verb form.
// It returns the infinitive and a known model word conjugated the same way,
// suitable for Analyzer.AddWithAffix.
type Reconstructor interface {
	Reconstruct(word string) (lemma, model string, err error)
}

// ReconstructorFunc adapts a function to the Reconstructor interface.
type ReconstructorFunc func(word string) (string, string, error)

// Reconstruct calls f(word).
func (f ReconstructorFunc) Reconstruct(word string) (string, string, error) {
	return f(word)
}

// Default model words of the first and second conjugation groups.
const (
	ModelFirstGroup  = "aimer"
	ModelSecondGroup = "finir"
)

// ending maps a conjugation ending to the infinitive ending replacing it.
type ending struct {
	suffix     string
	infinitive string
	model      string
}

// firstGroup and secondGroup list the endings of the regular paradigms.
var (
	firstGroup = []string{
		"e", "es", "ent", "ons", "ez",
		"ais", "ait", "ions", "iez", "aient",
		"ai", "as", "a", "âmes", "âtes", "èrent",
		"erai", "eras", "era", "erons", "erez", "eront",
		"erais", "erait", "erions", "eriez", "eraient",
		"asse", "asses", "ât", "assions", "assiez", "assent",
		"é", "ée", "és", "ées", "ant",
	}
	secondGroup = []string{
		"ir", "is", "it", "issons", "issez", "issent",
		"issais", "issait", "issions", "issiez", "issaient",
		"îmes", "îtes", "irent",
		"irai", "iras", "ira", "irons", "irez", "iront",
		"irais", "irait", "irions", "iriez", "iraient",
		"isse", "isses", "ît", "issant", "i", "ie", "ies",
	}
)

// SuffixReconstructor reconstructs infinitives from regular conjugation
// endings, longest ending first. Forms matching no ending are stemmed with
// the snowball French stemmer and given a first-group infinitive.
type SuffixReconstructor struct {
	endings []ending
	// MinStem is the minimum number of runes left once the ending is removed.
	MinStem int
}

// NewSuffixReconstructor returns a reconstructor for the regular -er and -ir
// paradigms, registered against ModelFirstGroup and ModelSecondGroup.
func NewSuffixReconstructor() *SuffixReconstructor {
	r := &SuffixReconstructor{MinStem: 2}
	for _, s := range firstGroup {
		r.endings = append(r.endings, ending{suffix: s, infinitive: "er", model: ModelFirstGroup})
	}
	for _, s := range secondGroup {
		r.endings = append(r.endings, ending{suffix: s, infinitive: "ir", model: ModelSecondGroup})
	}
	// longest ending first, ties ordered by model so the table is stable
	slices.SortStableFunc(r.endings, func(a, b ending) int {
		if c := cmp.Compare(len([]rune(b.suffix)), len([]rune(a.suffix))); c != 0 {
			return c
		}
		return cmp.Compare(b.model, a.model)
	})
	return r
}

// Reconstruct implements Reconstructor. Forms shorter than MinStem have no
// stem to rebuild from and yield ErrEmptyLemma.
func (r *SuffixReconstructor) Reconstruct(word string) (string, string, error) {
	runes := []rune(word)
	if len(runes) < max(r.MinStem, 1) {
		return "", "", fmt.Errorf("reconstruct %q: %w", word, ErrEmptyLemma)
	}
	for _, e := range r.endings {
		if !strings.HasSuffix(word, e.suffix) {
			continue
		}
		stem := runes[:len(runes)-len([]rune(e.suffix))]
		if len(stem) < r.MinStem {
			continue
		}
		return fixStem(string(stem)) + e.infinitive, e.model, nil
	}

	stem, err := snowball.Stem(word, "french", true)
	if err != nil {
		return "", "", fmt.Errorf("stem %q: %w", word, err)
	}
	if stem == "" {
		stem = word
	}
	return fixStem(stem) + "er", ModelFirstGroup, nil
}

// fixStem undoes the spelling changes of -cer and -ger verbs before a or o
// (commençons → commenc-, mangeons → mang-).
func fixStem(stem string) string {
	switch {
	case strings.HasSuffix(stem, "ç"):
		return strings.TrimSuffix(stem, "ç") + "c"
	case strings.HasSuffix(stem, "ge") && len([]rune(stem)) > 2:
		return strings.TrimSuffix(stem, "e")
	}
	return stem
}
