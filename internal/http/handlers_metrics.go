package httpapi

import "net/http"

// HandleMetrics returns the sample count and running average per algorithm
func (h *Handler) HandleMetrics(w http.ResponseWriter, _ *http.Request) {
	snapshot := h.svc.Aggregator().Snapshot()

	resp := MetricsResponse{Algorithms: make([]AlgorithmMetrics, 0, len(snapshot))}
	for _, st := range snapshot {
		resp.Algorithms = append(resp.Algorithms, AlgorithmMetrics{
			Algorithm:   string(st.Algorithm),
			SampleCount: st.SampleCount,
			AverageMs:   st.AverageMs,
			Average:     st.Average(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
