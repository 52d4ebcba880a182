package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"apptrust/pkg/platform/circuit"
)

// BreakerStore shields a flaky sink behind a circuit breaker. While the
// circuit is open, events are dropped instead of waiting on a dead
// dependency; a probe write goes through periodically so the circuit can
// close again.
type BreakerStore struct {
	inner   Store
	breaker *circuit.Breaker
	logger  *slog.Logger

	probeInterval time.Duration
	mu            sync.Mutex
	lastProbe     time.Time
}

func NewBreakerStore(inner Store, breaker *circuit.Breaker, logger *slog.Logger) *BreakerStore {
	return &BreakerStore{
		inner:         inner,
		breaker:       breaker,
		logger:        logger,
		probeInterval: 30 * time.Second,
	}
}

// Append writes to the sink unless the circuit is open. Sink failures never
// propagate to the caller; losing an audit event must not fail the request
// that produced it.
func (s *BreakerStore) Append(ctx context.Context, event Event) error {
	if s.breaker.IsOpen() && !s.shouldProbe() {
		s.logger.DebugContext(ctx, "audit event dropped, circuit open",
			"sink", s.breaker.Name(),
			"action", event.Action,
		)
		return nil
	}

	if err := s.inner.Append(ctx, event); err != nil {
		if _, change := s.breaker.RecordFailure(); change.Opened {
			s.logger.ErrorContext(ctx, "audit sink circuit opened",
				"sink", s.breaker.Name(),
				"error", err,
			)
		}
		return nil
	}

	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.logger.InfoContext(ctx, "audit sink circuit closed", "sink", s.breaker.Name())
	}
	return nil
}

func (s *BreakerStore) ListByPackage(ctx context.Context, pkg string) ([]Event, error) {
	return s.inner.ListByPackage(ctx, pkg)
}

// shouldProbe rations attempts while the circuit is open so recovery can be
// detected without hammering the sink.
func (s *BreakerStore) shouldProbe() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if time.Since(s.lastProbe) < s.probeInterval {
		return false
	}
	s.lastProbe = time.Now()
	return true
}
