package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dsjohal14/citysearch/internal/scope/match"
	"github.com/dsjohal14/citysearch/internal/scope/search"
	"github.com/dsjohal14/citysearch/internal/scope/trie"
)

// HandleSearch runs one timed search with the requested algorithm
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid search request")
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	alg, err := match.ParseAlgorithm(req.Algorithm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_ALGORITHM")
		return
	}

	res, err := h.svc.Query(req.Query, alg)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	h.logger.Info().
		Str("query", req.Query).
		Str("algorithm", string(alg)).
		Int("results", len(res.Matches)).
		Float64("elapsed_ms", res.ElapsedMs()).
		Msg("search completed")

	writeJSON(w, http.StatusOK, SearchResponse{
		Results:   res.Matches,
		Count:     len(res.Matches),
		Query:     req.Query,
		Algorithm: string(alg),
		ElapsedMs: res.ElapsedMs(),
		Average:   res.Stats.Average(),
	})
}

func (h *Handler) writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, match.ErrInvalidAlgorithm):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_ALGORITHM")
	case errors.Is(err, match.ErrUnsupportedCharacter):
		writeError(w, http.StatusBadRequest, err.Error(), "UNSUPPORTED_CHARACTER")
	case errors.Is(err, trie.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, err.Error(), "NOT_READY")
	case errors.Is(err, search.ErrCorpusNotLoaded):
		writeError(w, http.StatusServiceUnavailable, err.Error(), "CORPUS_NOT_LOADED")
	default:
		h.logger.Error().Err(err).Msg("search failed")
		writeError(w, http.StatusInternalServerError, "search failed", "INTERNAL")
	}
}
