package viceverser

import "slices"

// Source tells which path of the resolution produced a Record.
type Source uint8

const (
	SourceException Source = iota + 1
	SourceLexicon
	SourcePrefix
	SourceRule
	SourceCompound
	SourceDegenerate
)

func (s Source) String() string {
	switch s {
	case SourceException:
		return "exception"
	case SourceLexicon:
		return "lexicon"
	case SourcePrefix:
		return "prefix"
	case SourceRule:
		return "rule"
	case SourceCompound:
		return "compound"
	case SourceDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Record is a resolved lemma. Records are immutable once built and may be
// shared by several cache keys (a compound and its rejoined lemma, for
// instance); callers must not modify the slices they get from one.
type Record struct {
	// Stem is the lemma.
	Stem string
	// POS lists the tags of the analysis the lemma comes from. It is empty
	// for rule-derived and exception lemmas.
	POS []POS
	// Features holds the normalized morphological features.
	Features FeatureSet
	// Source is the path that produced the record.
	Source Source
}

// newRecord copies tags so the record never aliases analyzer data.
func newRecord(stem string, tags []POS, feats FeatureSet, src Source) *Record {
	return &Record{
		Stem:     stem,
		POS:      slices.Clone(tags),
		Features: feats,
		Source:   src,
	}
}

// HasPOS reports whether p is one of the record's tags.
func (r *Record) HasPOS(p POS) bool {
	return slices.Contains(r.POS, p)
}

// POSNames returns the tag names of the record.
func (r *Record) POSNames() []string {
	out := make([]string, len(r.POS))
	for i, p := range r.POS {
		out[i] = p.String()
	}
	return out
}

// Equal reports whether r and o have the same content.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Stem == o.Stem &&
		slices.Equal(r.POS, o.POS) &&
		r.Features.Equal(o.Features) &&
		r.Source == o.Source
}
