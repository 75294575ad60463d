package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/viceverser"
)

func TestObserverCountsLemmatizerEvents(t *testing.T) {
	lex := viceverser.NewLexicon()
	lex.Add("aimer", "st:aimer po:verb is:infi")
	lex.Add("aimons", "st:aimer po:verb is:ipre is:1pl")
	lex.Add("maisons", "st:maison po:noun is:fem is:pl")
	l := viceverser.NewLemmatizer(lex, viceverser.WithObserver(Observer{}))

	noun := viceverser.Context{POS: viceverser.POSNoun}
	verb := viceverser.Context{POS: viceverser.POSVerb}
	hits := CacheLookupsTotal.WithLabelValues(noun.String(), "hit")
	misses := CacheLookupsTotal.WithLabelValues(noun.String(), "miss")
	lexicon := ResolutionsTotal.WithLabelValues(noun.String(), "lexicon")
	rule := ResolutionsTotal.WithLabelValues(verb.String(), "rule")
	aimer := RegistrationsTotal.WithLabelValues(viceverser.ModelFirstGroup)

	baseHits, baseMisses := testutil.ToFloat64(hits), testutil.ToFloat64(misses)
	baseLexicon, baseRule, baseAimer := testutil.ToFloat64(lexicon), testutil.ToFloat64(rule), testutil.ToFloat64(aimer)

	for range 3 {
		_, err := l.Resolve("maisons", viceverser.KeyOf("maisons"), viceverser.POSNoun)
		require.NoError(t, err)
	}
	_, err := l.Resolve("chantons", viceverser.KeyOf("chantons"), viceverser.POSVerb)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(hits)-baseHits)
	assert.Equal(t, 1.0, testutil.ToFloat64(misses)-baseMisses)
	assert.Equal(t, 1.0, testutil.ToFloat64(lexicon)-baseLexicon)
	assert.Equal(t, 1.0, testutil.ToFloat64(rule)-baseRule)
	assert.Equal(t, 1.0, testutil.ToFloat64(aimer)-baseAimer)
}

func TestObserverCompoundContexts(t *testing.T) {
	o := Observer{}
	seg := viceverser.Context{POS: viceverser.POSNoun, Compound: true}
	c := CacheLookupsTotal.WithLabelValues("compound:noun", "miss")
	base := testutil.ToFloat64(c)

	o.CacheLookup(seg, false)
	assert.Equal(t, 1.0, testutil.ToFloat64(c)-base)
}

func TestRegisterLemmatizerMetricsOnce(t *testing.T) {
	assert.NotPanics(t, func() {
		RegisterLemmatizerMetrics(func() int { return 1 })
		RegisterLemmatizerMetrics(func() int { return 2 })
	})
}
