package viceverser

// Observer is notified by the Lemmatizer as it works. Calls happen with the
// Lemmatizer lock held and must not call back into it.
type Observer interface {
	// CacheLookup reports a cache hit or miss under c. A compound whose
	// rejoined lemma is already cached counts as a second lookup, a hit.
	CacheLookup(c Context, hit bool)
	// Resolved reports a record freshly computed under c. Aliased compounds
	// reuse a record and are not reported here.
	Resolved(c Context, src Source)
	// Registered reports a verb taught to the analyzer.
	Registered(lemma, model string)
}

type nopObserver struct{}

func (nopObserver) CacheLookup(Context, bool) {}
func (nopObserver) Resolved(Context, Source)  {}
func (nopObserver) Registered(string, string) {}
