package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/cours-de-latin/viceverser"
	logpkg "github.com/cours-de-latin/viceverser/internal/logger"
)

// ---- JSON types ---------------------------------------------------------

type lemmaResponse struct {
	Word     string   `json:"word"`
	Norm     string   `json:"norm"`
	Lemma    string   `json:"lemma"`
	POS      []string `json:"pos"`
	Features string   `json:"features"`
	Source   string   `json:"source,omitempty"`
}

type tokenRequest struct {
	Word string `json:"word"`
	POS  string `json:"pos"`
}

type tokensRequest struct {
	Tokens []tokenRequest `json:"tokens"`
}

type tokensResponse struct {
	Results []lemmaResponse `json:"results"`
}

type prioritiesResponse struct {
	POS      string   `json:"pos"`
	Compound bool     `json:"compound"`
	Order    []string `json:"order"`
}

type healthResponse struct {
	Status       string `json:"status"`
	CacheEntries int    `json:"cache_entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logpkg.FromContext(r.Context()).Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

func posNames(tags []viceverser.POS) []string {
	out := make([]string, len(tags))
	for i, p := range tags {
		out[i] = p.String()
	}
	return out
}

// ---- handlers -----------------------------------------------------------

type server struct {
	lem       *viceverser.Lemmatizer
	maxTokens int
}

func (s *server) handleLemmatize(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, r, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	pos, err := viceverser.ParsePOS(r.URL.Query().Get("pos"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tok := viceverser.NewToken(word, pos)
	rec, err := s.lem.Resolve(tok.Norm, tok.Key, tok.POS)
	if err != nil {
		ctx := logpkg.WithFields(r.Context(), zap.String("word", word), zap.Stringer("pos", pos))
		logpkg.FromContext(ctx).Error("resolve failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "analyzer failure")
		return
	}
	writeJSON(w, r, http.StatusOK, lemmaResponse{
		Word:     word,
		Norm:     tok.Norm,
		Lemma:    rec.Stem,
		POS:      posNames(rec.POS),
		Features: rec.Features.Format(s.lem.Separators()),
		Source:   rec.Source.String(),
	})
}

func (s *server) handleLemmatizeTokens(w http.ResponseWriter, r *http.Request) {
	var body tokensRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Tokens) == 0 {
		writeError(w, r, http.StatusBadRequest, "body must be JSON with a non-empty 'tokens' array")
		return
	}
	if len(body.Tokens) > s.maxTokens {
		writeError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("at most %d tokens per request, got %d", s.maxTokens, len(body.Tokens)))
		return
	}

	tokens := make([]viceverser.Token, len(body.Tokens))
	for i, t := range body.Tokens {
		if t.Word == "" {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("token %d: empty 'word'", i))
			return
		}
		pos, err := viceverser.ParsePOS(t.POS)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("token %d: %v", i, err))
			return
		}
		tokens[i] = viceverser.NewToken(t.Word, pos)
	}

	if err := s.lem.LemmatizeTokens(tokens); err != nil {
		logpkg.FromContext(r.Context()).Error("lemmatize tokens failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "analyzer failure")
		return
	}

	out := make([]lemmaResponse, len(tokens))
	for i, tok := range tokens {
		out[i] = lemmaResponse{
			Word:     tok.Surface,
			Norm:     tok.Norm,
			Lemma:    tok.Lemma,
			POS:      posNames(tok.LemmaPOS),
			Features: tok.Feats,
		}
	}
	writeJSON(w, r, http.StatusOK, tokensResponse{Results: out})
}

func (s *server) handlePriorities(w http.ResponseWriter, r *http.Request) {
	pos, err := viceverser.ParsePOS(r.URL.Query().Get("pos"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	compound := false
	if v := r.URL.Query().Get("compound"); v != "" {
		compound, err = strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "'compound' must be a boolean")
			return
		}
	}
	c := viceverser.Context{POS: pos, Compound: compound}
	writeJSON(w, r, http.StatusOK, prioritiesResponse{
		POS:      pos.String(),
		Compound: compound,
		Order:    posNames(s.lem.Priorities().Order(c)),
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", CacheEntries: s.lem.CacheSize()})
}
