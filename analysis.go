package viceverser

import (
	"fmt"
	"strings"
)

// POS is a universal part-of-speech tag, as produced by the host tagger.
type POS uint8

const (
	POSAdjective POS = iota
	POSAdposition
	POSAdverb
	POSAuxiliary
	POSCoordConj
	POSDeterminer
	POSInterjection
	POSNoun
	POSNumeral
	POSParticle
	POSPronoun
	POSProperNoun
	POSPunctuation
	POSSubordConj
	POSSymbol
	POSVerb
	POSOther
	POSSpace

	numPOS = int(POSSpace) + 1
)

// posNames holds the lowercase tag names, indexed by POS.
var posNames = [numPOS]string{
	"adj", "adp", "adv", "aux", "cconj", "det", "intj", "noun", "num",
	"part", "pron", "propn", "punct", "sconj", "sym", "verb", "x", "space",
}

// String returns the lowercase tag name ("noun", "aux", …).
func (p POS) String() string {
	if int(p) < numPOS {
		return posNames[p]
	}
	return fmt.Sprintf("pos(%d)", uint8(p))
}

// ParsePOS converts a tag name to a POS. Case-insensitive.
func ParsePOS(s string) (POS, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range posNames {
		if name == s {
			return POS(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPOS, s)
}

// AllPOS returns every POS in enumeration order.
func AllPOS() []POS {
	out := make([]POS, numPOS)
	for i := range out {
		out[i] = POS(i)
	}
	return out
}

// Context is the POS a word is resolved under. Compound is set for the
// segments of a hyphenated word, which prefer an adposition reading first.
type Context struct {
	POS      POS
	Compound bool
}

// numContexts is the size of every dense per-context table.
const numContexts = 2 * numPOS

// Index returns the dense table index of c.
func (c Context) Index() int {
	if c.Compound {
		return numPOS + int(c.POS)
	}
	return int(c.POS)
}

func (c Context) String() string {
	if c.Compound {
		return "compound:" + c.POS.String()
	}
	return c.POS.String()
}

// Entry is one lexical analysis returned by the morphological analyzer,
// e.g. "st:cheval po:noun is:pl".
type Entry struct {
	// Stems lists the st: morphs in order.
	Stems []string
	// Tags lists the po: morphs in order. Tags unknown to POS are kept in Unknown.
	Tags    []POS
	Unknown []string
	// Flags lists the is: morphs, prefix included.
	Flags []string
	// Prefixed is set when the analysis carries pa: morphs.
	Prefixed bool
}

// ParseEntry splits a whitespace-separated analysis into its morphs.
func ParseEntry(morph string) Entry {
	var e Entry
	for _, m := range strings.Fields(morph) {
		switch {
		case strings.HasPrefix(m, "st:"):
			e.Stems = append(e.Stems, m[3:])
		case strings.HasPrefix(m, "po:"):
			if p, err := ParsePOS(m[3:]); err == nil {
				e.Tags = appendPOS(e.Tags, p)
			} else {
				e.Unknown = append(e.Unknown, m[3:])
			}
		case strings.HasPrefix(m, "is:"):
			e.Flags = append(e.Flags, m)
		case strings.HasPrefix(m, "pa:"):
			e.Prefixed = true
		}
	}
	return e
}

// Stem returns the first st: morph, or "" when the entry has none.
func (e Entry) Stem() string {
	if len(e.Stems) == 0 {
		return ""
	}
	return e.Stems[0]
}

// prefixedStem handles analyses of prefixed words such as
//
//	pa:a st:a po:pfx pa:ambiances ( st:ambiance po:noun is:pl | st:ambiancer po:verb … )
//
// Only the part before the first "|" alternative is read. It returns the
// concatenated stems and the entry restricted to that part, and ok=false when
// fewer than two stems were found.
func prefixedStem(morph string) (string, Entry, bool) {
	head, _, _ := strings.Cut(morph, "|")
	e := ParseEntry(head)
	if len(e.Stems) < 2 {
		return "", Entry{}, false
	}
	return strings.Join(e.Stems, ""), e, true
}

// appendPOS appends p to tags unless already present.
func appendPOS(tags []POS, p POS) []POS {
	for _, t := range tags {
		if t == p {
			return tags
		}
	}
	return append(tags, p)
}
