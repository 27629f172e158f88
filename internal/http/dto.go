// Package httpapi provides HTTP handlers and data transfer objects for the search API.
package httpapi

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	NameCount int    `json:"name_count"`
	TrieState string `json:"trie_state"`
	TrieWords int    `json:"trie_words"`
}

// SearchRequest represents a search request
type SearchRequest struct {
	Query     string `json:"query"`
	Algorithm string `json:"algorithm"` // kmp, z, hashing or trie
}

// SearchResponse represents the matches and timing of one search
type SearchResponse struct {
	Results   []string `json:"results"`
	Count     int      `json:"count"`
	Query     string   `json:"query"`
	Algorithm string   `json:"algorithm"`
	ElapsedMs float64  `json:"elapsed_ms"`
	Average   string   `json:"average"` // two decimals, or "not yet used"
}

// AlgorithmMetrics is the running timing summary of one algorithm
type AlgorithmMetrics struct {
	Algorithm   string  `json:"algorithm"`
	SampleCount int     `json:"sample_count"`
	AverageMs   float64 `json:"average_ms"`
	Average     string  `json:"average"`
}

// MetricsResponse lists every algorithm in display order
type MetricsResponse struct {
	Algorithms []AlgorithmMetrics `json:"algorithms"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
