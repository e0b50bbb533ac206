// Package polling keeps role dashboards in sync with the store by periodic
// refetching. There is no push channel; each dashboard owns a Synchronizer
// that replaces its whole view snapshot on a cron schedule and suppresses
// ticks while one of its own mutations is still in flight.
package polling

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Schedules for the role dashboards. The kitchen polls faster because order
// pickup is contended.
const (
	KitchenSchedule   = "*/3 * * * * *"
	DashboardSchedule = "*/5 * * * * *"
)

// Synchronizer keeps one dashboard's snapshot of type T fresh. The snapshot
// is replaced wholesale on every tick; there is no partial merging.
type Synchronizer[T any] struct {
	name     string
	clientID uuid.UUID
	schedule string
	fetch    func(ctx context.Context) (T, error)
	cron     *cron.Cron
	logger   *slog.Logger

	mu       sync.RWMutex
	snapshot T

	inFlight atomic.Int64
}

// NewSynchronizer creates a synchronizer that refreshes via fetch on the
// given cron schedule (with seconds). The snapshot starts as the zero value
// until the first refresh.
func NewSynchronizer[T any](
	name string,
	schedule string,
	fetch func(ctx context.Context) (T, error),
	logger *slog.Logger,
) *Synchronizer[T] {
	clientID := uuid.New()
	return &Synchronizer[T]{
		name:     name,
		clientID: clientID,
		schedule: schedule,
		fetch:    fetch,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "synchronizer", "view", name, "clientId", clientID.String()),
	}
}

// Start performs an initial refresh and begins the periodic ticks.
func (s *Synchronizer[T]) Start() error {
	ctx := context.Background()
	if err := s.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "initial refresh failed, starting with empty snapshot", "error", err)
	}

	if _, err := s.cron.AddFunc(s.schedule, s.tick); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.InfoContext(ctx, "synchronizer started", "schedule", s.schedule)
	return nil
}

// Stop halts the periodic ticks.
func (s *Synchronizer[T]) Stop() {
	s.cron.Stop()
	s.logger.InfoContext(context.Background(), "synchronizer stopped")
}

// Snapshot returns the current view snapshot.
func (s *Synchronizer[T]) Snapshot() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Refresh fetches ground truth and replaces the snapshot.
func (s *Synchronizer[T]) Refresh(ctx context.Context) error {
	fresh, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = fresh
	s.mu.Unlock()
	return nil
}

// Mutate runs a remote mutation with an optimistic local update: apply
// rewrites the snapshot immediately so the dashboard reflects the change
// before the server confirms it. On failure the optimistic state is thrown
// away by forcing an immediate refetch; the mutation error is returned either
// way. While the mutation is in flight, periodic ticks are suppressed so a
// refetch cannot clobber the optimistic state with a stale read.
func (s *Synchronizer[T]) Mutate(ctx context.Context, apply func(T) T, run func(ctx context.Context) error) error {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	s.mu.Lock()
	s.snapshot = apply(s.snapshot)
	s.mu.Unlock()

	if err := run(ctx); err != nil {
		s.logger.WarnContext(ctx, "mutation failed, restoring ground truth", "error", err)
		if refreshErr := s.Refresh(ctx); refreshErr != nil {
			s.logger.ErrorContext(ctx, "rollback refresh failed", "error", refreshErr)
		}
		return err
	}
	return nil
}

// tick is the cron callback. A tick overlapping an in-flight mutation is
// dropped, not deferred.
func (s *Synchronizer[T]) tick() {
	ctx := context.Background()
	if s.inFlight.Load() > 0 {
		s.logger.DebugContext(ctx, "tick skipped, mutation in flight")
		return
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.ErrorContext(ctx, "periodic refresh failed", "error", err)
	}
}
