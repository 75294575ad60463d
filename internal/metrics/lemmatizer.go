package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cours-de-latin/viceverser"
)

const namespace = "viceverser"

// Lemmatizer Prometheus metrics.
var (
	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Lemma cache lookups by context and result",
		},
		[]string{"context", "result"}, // "hit" / "miss"
	)

	ResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Lemmas computed by context and source",
		},
		[]string{"context", "source"},
	)

	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verb_registrations_total",
			Help:      "Verbs registered with the analyzer, by model word",
		},
		[]string{"model"},
	)
)

var lemmatizerMetricsRegistered bool

// RegisterLemmatizerMetrics registers the lemmatizer metrics and a gauge
// reading the cache size from cacheSize at scrape time. Must be called once from main.
func RegisterLemmatizerMetrics(cacheSize func() int) {
	if lemmatizerMetricsRegistered {
		return
	}
	prometheus.MustRegister(CacheLookupsTotal)
	prometheus.MustRegister(ResolutionsTotal)
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Records held by the lemma cache over all contexts",
		},
		func() float64 { return float64(cacheSize()) },
	))
	lemmatizerMetricsRegistered = true
}

// Observer feeds the lemmatizer metrics. It implements viceverser.Observer.
type Observer struct{}

var _ viceverser.Observer = Observer{}

// CacheLookup implements viceverser.Observer.
func (Observer) CacheLookup(c viceverser.Context, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(c.String(), result).Inc()
}

// Resolved implements viceverser.Observer.
func (Observer) Resolved(c viceverser.Context, src viceverser.Source) {
	ResolutionsTotal.WithLabelValues(c.String(), src.String()).Inc()
}

// Registered implements viceverser.Observer.
func (Observer) Registered(_, model string) {
	RegistrationsTotal.WithLabelValues(model).Inc()
}
