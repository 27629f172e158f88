package search

import (
	"sync"
	"time"

	"github.com/dsjohal14/citysearch/internal/scope/match"
	"github.com/dsjohal14/citysearch/internal/scope/timing"
	"github.com/rs/zerolog"
)

// Result is the outcome of one timed query
type Result struct {
	Algorithm match.Algorithm
	Query     string
	Matches   []string
	Elapsed   time.Duration
	Stats     timing.Stats
}

// ElapsedMs returns the call's duration in milliseconds
func (r *Result) ElapsedMs() float64 {
	return timing.Milliseconds(r.Elapsed)
}

// Service runs timed queries one at a time
type Service struct {
	mu         sync.Mutex
	dispatcher *Dispatcher
	agg        *timing.Aggregator
	logger     zerolog.Logger
}

// NewService creates a service recording into agg
func NewService(d *Dispatcher, agg *timing.Aggregator, logger zerolog.Logger) *Service {
	return &Service{
		dispatcher: d,
		agg:        agg,
		logger:     logger,
	}
}

// Dispatcher returns the underlying dispatcher
func (s *Service) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// Aggregator returns the timing aggregator
func (s *Service) Aggregator() *timing.Aggregator {
	return s.agg
}

// Query runs one search under alg and records its duration.
// Failed searches are not recorded.
func (s *Service) Query(query string, alg match.Algorithm) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []string
	elapsed, stats, err := s.agg.Time(alg, func() error {
		var err error
		matches, err = s.dispatcher.Search(query, alg)
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("algorithm", string(alg)).
			Str("query", query).
			Msg("search failed")
		return nil, err
	}

	res := &Result{
		Algorithm: alg,
		Query:     query,
		Matches:   matches,
		Elapsed:   elapsed,
		Stats:     stats,
	}

	s.logger.Debug().
		Str("algorithm", string(alg)).
		Str("query", query).
		Int("results", len(matches)).
		Float64("elapsed_ms", res.ElapsedMs()).
		Str("average", stats.Average()).
		Msg("search completed")

	return res, nil
}
