package viceverser

import "errors"

// Sentinel errors. Per-word conditions (unknown word, ambiguous POS) are not
// errors; only structural failures of the analyzer reach the caller.
var (
	ErrUnknownPOS   = errors.New("viceverser: unknown part of speech")
	ErrUnknownModel = errors.New("viceverser: unknown affix model")
	ErrEmptyLemma   = errors.New("viceverser: empty lemma")
)
