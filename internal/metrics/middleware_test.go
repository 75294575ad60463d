package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsDurationAndCount(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/api/lemmatize", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/lemmatize?word=rire", http.NoBody))
	require.Equal(t, http.StatusOK, rr.Code)

	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/lemmatize", "200")), 1.0)
	assert.Positive(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestMiddlewareStatusCodes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/bad", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.WriteHeader(http.StatusInternalServerError)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bad", http.NoBody))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/bad", "400")))
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/bad", "500")))
}

func TestMiddlewareUnmatchedRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {})

	c := httpRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")
	base := testutil.ToFloat64(c)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/lemmatize/rire", http.NoBody))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(c)-base)
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routeLabel(nil))
	assert.Equal(t, unmatchedRoute, routeLabel(chi.NewRouteContext()))

	rctx := chi.NewRouteContext()
	rctx.RoutePatterns = []string{"/api/lemmatize/"}
	assert.Equal(t, "/api/lemmatize", routeLabel(rctx))

	rctx = chi.NewRouteContext()
	rctx.RoutePatterns = []string{"/"}
	assert.Equal(t, "/", routeLabel(rctx))
}
