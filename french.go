package viceverser

// DefaultPriority is the fallback order shared by tags without a specific
// similarity list.
var DefaultPriority = []POS{
	POSPronoun,
	POSDeterminer,
	POSCoordConj,
	POSSubordConj,
	POSAuxiliary,
	POSVerb,
	POSNoun,
}

// DefaultSimilarities lists, for some tags, the tags they are most often
// confused with by French taggers. An aux is nearly always a verb, and
// present infinitives are usually tagged noun.
var DefaultSimilarities = map[POS][]POS{
	POSAuxiliary:  {POSVerb},
	POSVerb:       {POSAuxiliary, POSAdjective, POSNoun},
	POSNoun:       {POSAdjective, POSVerb},
	POSAdjective:  {POSNoun, POSVerb},
	POSDeterminer: {POSCoordConj, POSSubordConj, POSPronoun, POSAdposition},
	POSPronoun:    {POSDeterminer, POSCoordConj, POSSubordConj, POSAdposition},
}

// DefaultPriorities builds the French priority table over every POS, with
// adp preferred for compound segments.
func DefaultPriorities() *Priorities {
	return BuildPriorities(AllPOS(), DefaultSimilarities, DefaultPriority, POSAdposition)
}

// irregular paradigms seeded in the verb and aux tables.
var irregularVerbs = map[string][]string{
	"être": {
		"être", "étant", "été",
		"suis", "es", "est", "sommes", "êtes", "sont",
		"étais", "était", "étions", "étiez", "étaient",
		"fus", "fut", "fûmes", "fûtes", "furent",
		"serai", "seras", "sera", "serons", "serez", "seront",
		"serais", "serait", "serions", "seriez", "seraient",
		"sois", "soit", "soyons", "soyez", "soient",
		"fusse", "fusses", "fût", "fussions", "fussiez", "fussent",
	},
	"avoir": {
		"avoir", "ayant", "eu", "eue", "eues",
		"ai", "as", "a", "avons", "avez", "ont",
		"avais", "avait", "avions", "aviez", "avaient",
		"eus", "eut", "eûmes", "eûtes", "eurent",
		"aurai", "auras", "aura", "aurons", "aurez", "auront",
		"aurais", "aurait", "aurions", "auriez", "auraient",
		"aie", "aies", "ait", "ayons", "ayez", "aient",
		"eusse", "eusses", "eût", "eussions", "eussiez", "eussent",
	},
}

// Exceptions maps a POS to surface form → lemma pairs seeded in the cache.
type Exceptions map[POS]map[string]string

// DefaultExceptions returns the être and avoir paradigms for verb and aux.
func DefaultExceptions() Exceptions {
	exc := Exceptions{
		POSVerb:      make(map[string]string),
		POSAuxiliary: make(map[string]string),
	}
	for lemma, forms := range irregularVerbs {
		for _, f := range forms {
			exc[POSVerb][f] = lemma
			exc[POSAuxiliary][f] = lemma
		}
	}
	return exc
}

// Merge adds the pairs of other to exc, other winning on conflicts.
func (exc Exceptions) Merge(other Exceptions) Exceptions {
	for pos, forms := range other {
		if exc[pos] == nil {
			exc[pos] = make(map[string]string, len(forms))
		}
		for f, l := range forms {
			exc[pos][f] = l
		}
	}
	return exc
}

// DefaultFeatureLookup maps the inflection flags of the French hunspell
// dictionary to Universal Dependencies features. Flags missing here (epi,
// inv, …) end up under "is".
func DefaultFeatureLookup() FeatureLookup {
	return FeatureLookup{
		"mas":  {"Gender": "Masc"},
		"fem":  {"Gender": "Fem"},
		"sg":   {"Number": "Sing"},
		"pl":   {"Number": "Plur"},
		"infi": {"VerbForm": "Inf"},
		"ipre": {"Mood": "Ind", "Tense": "Pres"},
		"iimp": {"Mood": "Ind", "Tense": "Imp"},
		"ipsi": {"Mood": "Ind", "Tense": "Past"},
		"ifut": {"Mood": "Ind", "Tense": "Fut"},
		"cond": {"Mood": "Cnd"},
		"spre": {"Mood": "Sub", "Tense": "Pres"},
		"simp": {"Mood": "Sub", "Tense": "Imp"},
		"impe": {"Mood": "Imp"},
		"ppre": {"Tense": "Pres", "VerbForm": "Part"},
		"ppas": {"Tense": "Past", "VerbForm": "Part"},
		"1sg":  {"Number": "Sing", "Person": "1"},
		"2sg":  {"Number": "Sing", "Person": "2"},
		"3sg":  {"Number": "Sing", "Person": "3"},
		"1pl":  {"Number": "Plur", "Person": "1"},
		"2pl":  {"Number": "Plur", "Person": "2"},
		"3pl":  {"Number": "Plur", "Person": "3"},
	}
}
