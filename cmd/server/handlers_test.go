package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cours-de-latin/viceverser"
	"github.com/cours-de-latin/viceverser/internal/config"
)

// failingAnalyzer knows no word and refuses every registration.
type failingAnalyzer struct{}

func (failingAnalyzer) Spell(string) bool                 { return false }
func (failingAnalyzer) Analyze(string) []string           { return nil }
func (failingAnalyzer) AddWithAffix(string, string) error { return viceverser.ErrUnknownModel }

func newTestRouter(t *testing.T, lem *viceverser.Lemmatizer) http.Handler {
	t.Helper()
	if lem == nil {
		var err error
		lem, err = viceverser.New("../../data")
		require.NoError(t, err)
	}
	var cfg config.Config
	cfg.ApplyDefaults()
	return newRouter(&server{lem: lem, maxTokens: 3}, cfg.HTTP, zap.NewNop())
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestLemmatizeEndpoint(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := do(t, h, http.MethodGet, "/api/lemmatize?word=Sommes&pos=noun", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	var got lemmaResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, lemmaResponse{
		Word:     "Sommes",
		Norm:     "sommes",
		Lemma:    "somme",
		POS:      []string{"noun"},
		Features: "Gender=Fem|Number=Plur",
		Source:   "lexicon",
	}, got)

	rr = do(t, h, http.MethodGet, "/api/lemmatize?word=sommes&pos=aux", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "être", got.Lemma)
	assert.Equal(t, "exception", got.Source)
}

func TestLemmatizeEndpointErrors(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := do(t, h, http.MethodGet, "/api/lemmatize?pos=noun", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/lemmatize?word=rire&pos=nom", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown part of speech")

	rr = do(t, h, http.MethodPost, "/api/lemmatize?word=rire&pos=noun", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	failing := viceverser.NewLemmatizer(failingAnalyzer{})
	rr = do(t, newTestRouter(t, failing), http.MethodGet, "/api/lemmatize?word=chantons&pos=verb", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestLemmatizeTokensEndpoint(t *testing.T) {
	h := newTestRouter(t, nil)

	body := `{"tokens":[{"word":"Les","pos":"det"},{"word":"maisons-bateaux","pos":"noun"},{"word":"chantons","pos":"verb"}]}`
	rr := do(t, h, http.MethodPost, "/api/lemmatize/tokens", body)
	require.Equal(t, http.StatusOK, rr.Code)

	var got tokensResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Results, 3)
	assert.Equal(t, "le", got.Results[0].Lemma)
	assert.Equal(t, "maison-bateau", got.Results[1].Lemma)
	assert.Equal(t, "chanter", got.Results[2].Lemma)
	assert.Equal(t, "Mood=Ind|Number=Plur|Person=1|Tense=Pres", got.Results[2].Features)
}

func TestLemmatizeTokensEndpointErrors(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"not json", "tokens", http.StatusBadRequest},
		{"empty", `{"tokens":[]}`, http.StatusBadRequest},
		{"empty word", `{"tokens":[{"word":"rire","pos":"noun"},{"word":"","pos":"verb"}]}`, http.StatusBadRequest},
		{"bad pos", `{"tokens":[{"word":"rire","pos":"nom"}]}`, http.StatusBadRequest},
		{"too many", `{"tokens":[{"word":"a","pos":"x"},{"word":"b","pos":"x"},{"word":"c","pos":"x"},{"word":"d","pos":"x"}]}`, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/api/lemmatize/tokens", tt.body)
			assert.Equal(t, tt.code, rr.Code)
		})
	}
}

func TestPrioritiesEndpoint(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := do(t, h, http.MethodGet, "/api/priorities?pos=aux", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got prioritiesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "aux", got.POS)
	assert.False(t, got.Compound)
	assert.Equal(t, []string{"aux", "verb", "pron"}, got.Order[:3])

	rr = do(t, h, http.MethodGet, "/api/priorities?pos=noun&compound=true", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Compound)
	assert.Equal(t, []string{"adp", "noun", "adj"}, got.Order[:3])

	rr = do(t, h, http.MethodGet, "/api/priorities?pos=noun&compound=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Positive(t, got.CacheEntries)

	rr = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "viceverser_http_requests_total")
}

func TestRecoverer(t *testing.T) {
	h := jsonRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rr.Body.String())
}
