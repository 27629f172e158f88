package timing

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sink receives each periodic snapshot
type Sink func([]Stats)

// Reporter polls an Aggregator at a fixed interval without mutating it
type Reporter struct {
	agg      *Aggregator
	interval time.Duration
	sink     Sink
}

// NewReporter creates a reporter. A nil sink discards snapshots.
func NewReporter(agg *Aggregator, interval time.Duration, sink Sink) *Reporter {
	if interval <= 0 {
		interval = time.Second
	}
	if sink == nil {
		sink = func([]Stats) {}
	}
	return &Reporter{agg: agg, interval: interval, sink: sink}
}

// LogSink writes one log line per algorithm
func LogSink(logger zerolog.Logger) Sink {
	return func(snapshot []Stats) {
		for _, st := range snapshot {
			logger.Info().
				Str("algorithm", string(st.Algorithm)).
				Int("samples", st.SampleCount).
				Str("average", st.Average()).
				Msg("average search time")
		}
	}
}

// Run delivers snapshots until ctx is cancelled
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sink(r.agg.Snapshot())
		}
	}
}
