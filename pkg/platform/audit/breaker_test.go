package audit

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"apptrust/pkg/platform/circuit"
)

type flakySink struct {
	err     error
	appends int
}

func (s *flakySink) Append(ctx context.Context, event Event) error {
	s.appends++
	return s.err
}

func (s *flakySink) ListByPackage(ctx context.Context, pkg string) ([]Event, error) {
	return nil, nil
}

func TestBreakerStore_Append(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("sink errors never propagate", func(t *testing.T) {
		sink := &flakySink{err: errors.New("broker unreachable")}
		store := NewBreakerStore(sink, circuit.New("test", circuit.WithFailureThreshold(3)), logger)

		assert.NoError(t, store.Append(ctx, Event{Action: "a"}))
	})

	t.Run("open circuit stops hitting the sink", func(t *testing.T) {
		sink := &flakySink{err: errors.New("broker unreachable")}
		breaker := circuit.New("test", circuit.WithFailureThreshold(2))
		store := NewBreakerStore(sink, breaker, logger)
		store.probeInterval = time.Hour
		store.lastProbe = time.Now()

		for i := 0; i < 5; i++ {
			assert.NoError(t, store.Append(ctx, Event{Action: "a"}))
		}
		assert.True(t, breaker.IsOpen())
		assert.Equal(t, 2, sink.appends)
	})

	t.Run("probe closes the circuit after recovery", func(t *testing.T) {
		sink := &flakySink{err: errors.New("broker unreachable")}
		breaker := circuit.New("test", circuit.WithFailureThreshold(1))
		store := NewBreakerStore(sink, breaker, logger)
		store.probeInterval = 0

		assert.NoError(t, store.Append(ctx, Event{Action: "a"}))
		assert.True(t, breaker.IsOpen())

		sink.err = nil
		assert.NoError(t, store.Append(ctx, Event{Action: "a"}))
		assert.False(t, breaker.IsOpen())
	})
}
