// Package timing records per-algorithm search latency and reports running averages.
package timing

import (
	"fmt"
	"sync"
	"time"

	"github.com/dsjohal14/citysearch/internal/scope/match"
)

// NotYetUsed is reported for an algorithm with no samples
const NotYetUsed = "not yet used"

// Stats summarizes one algorithm's series
type Stats struct {
	Algorithm   match.Algorithm `json:"algorithm"`
	SampleCount int             `json:"sample_count"`
	AverageMs   float64         `json:"average_ms"`
}

// Used reports whether any sample has been recorded
func (s Stats) Used() bool {
	return s.SampleCount > 0
}

// Average formats the mean to two decimal places, or NotYetUsed
func (s Stats) Average() string {
	if !s.Used() {
		return NotYetUsed
	}
	return fmt.Sprintf("%.2f ms", s.AverageMs)
}

// series is an append-only record of elapsed times in milliseconds
type series struct {
	samples []float64
	sum     float64
}

// Aggregator owns one series per algorithm.
// Writers append under the lock; readers only ever receive copies.
type Aggregator struct {
	mu     sync.Mutex
	series map[match.Algorithm]*series
}

// NewAggregator creates an aggregator with an empty series for every algorithm
func NewAggregator() *Aggregator {
	a := &Aggregator{series: make(map[match.Algorithm]*series)}
	for _, alg := range match.Algorithms() {
		a.series[alg] = &series{}
	}
	return a
}

// Record appends an elapsed duration to the algorithm's series and returns
// the updated stats
func (a *Aggregator) Record(alg match.Algorithm, elapsed time.Duration) (Stats, error) {
	return a.RecordMs(alg, Milliseconds(elapsed))
}

// RecordMs appends a sample already expressed in milliseconds
func (a *Aggregator) RecordMs(alg match.Algorithm, ms float64) (Stats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.series[alg]
	if !ok {
		return Stats{}, fmt.Errorf("%w: %q", match.ErrInvalidAlgorithm, alg)
	}
	s.samples = append(s.samples, ms)
	s.sum += ms
	return s.stats(alg), nil
}

// Time runs fn, records its wall-clock duration under alg, and returns the
// duration with the updated stats. Nothing is recorded when fn fails.
func (a *Aggregator) Time(alg match.Algorithm, fn func() error) (time.Duration, Stats, error) {
	start := time.Now()
	if err := fn(); err != nil {
		return 0, Stats{}, err
	}
	elapsed := time.Since(start)
	st, err := a.Record(alg, elapsed)
	return elapsed, st, err
}

// Stats returns the current summary for one algorithm
func (a *Aggregator) Stats(alg match.Algorithm) (Stats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.series[alg]
	if !ok {
		return Stats{}, fmt.Errorf("%w: %q", match.ErrInvalidAlgorithm, alg)
	}
	return s.stats(alg), nil
}

// Samples returns a copy of the recorded samples for one algorithm
func (a *Aggregator) Samples(alg match.Algorithm) []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.series[alg]
	if !ok {
		return nil
	}
	out := make([]float64, len(s.samples))
	copy(out, s.samples)
	return out
}

// Snapshot returns the stats of every algorithm in display order
func (a *Aggregator) Snapshot() []Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Stats, 0, len(a.series))
	for _, alg := range match.Algorithms() {
		out = append(out, a.series[alg].stats(alg))
	}
	return out
}

func (s *series) stats(alg match.Algorithm) Stats {
	st := Stats{Algorithm: alg, SampleCount: len(s.samples)}
	if st.SampleCount > 0 {
		st.AverageMs = s.sum / float64(st.SampleCount)
	}
	return st
}

// Milliseconds converts d to fractional milliseconds
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
