package viceverser

// State is the mutable state of a Lemmatizer: one cache table per Context
// and the verbs already registered with the analyzer. Tables only grow; a
// key is scoped to its table, so the same form may resolve differently
// under two contexts ("sommes" as noun and as aux).
//
// A State is not safe for concurrent use on its own; the Lemmatizer owning
// it serializes access.
type State struct {
	tables     [numContexts]map[Key]*Record
	registered map[string]string
}

// NewState returns an empty State.
func NewState() *State {
	s := &State{registered: make(map[string]string)}
	for i := range s.tables {
		s.tables[i] = make(map[Key]*Record)
	}
	return s
}

// Get returns the record cached for k under c.
func (s *State) Get(c Context, k Key) (*Record, bool) {
	r, ok := s.tables[c.Index()][k]
	return r, ok
}

// Set caches r for k under c.
func (s *State) Set(c Context, k Key, r *Record) {
	s.tables[c.Index()][k] = r
}

// setIfAbsent caches r unless k is already resolved under c.
func (s *State) setIfAbsent(c Context, k Key, r *Record) {
	t := s.tables[c.Index()]
	if _, ok := t[k]; !ok {
		t[k] = r
	}
}

// Len returns the number of entries cached under c.
func (s *State) Len(c Context) int {
	return len(s.tables[c.Index()])
}

// Size returns the number of entries over all tables.
func (s *State) Size() int {
	n := 0
	for _, t := range s.tables {
		n += len(t)
	}
	return n
}

// Registered returns the model word a lemma was registered with.
func (s *State) Registered(lemma string) (string, bool) {
	m, ok := s.registered[lemma]
	return m, ok
}

func (s *State) markRegistered(lemma, model string) {
	s.registered[lemma] = model
}
