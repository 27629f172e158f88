package httpapi

import "net/http"

// HandleHealth returns API health status, corpus size and trie readiness
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	d := h.svc.Dispatcher()
	index := d.Index()

	resp := HealthResponse{
		Status:    "healthy",
		NameCount: d.Count(),
		TrieState: index.State().String(),
		TrieWords: index.Len(),
	}
	if !d.Loaded() || !index.Ready() {
		resp.Status = "starting"
	}

	h.logger.Debug().Int("name_count", resp.NameCount).Str("trie_state", resp.TrieState).Msg("health check")

	writeJSON(w, http.StatusOK, resp)
}
