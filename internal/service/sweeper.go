package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SweeperService periodically evicts chat sessions nobody touched for a
// while so their pending timers are released.
type SweeperService struct {
	store    SessionStore
	idleTTL  time.Duration
	schedule string
	logger   *zap.Logger
	now      func() time.Time
}

// NewSweeperService creates a new sweeper. schedule is a standard cron spec.
func NewSweeperService(store SessionStore, idleTTL time.Duration, schedule string, logger *zap.Logger) *SweeperService {
	return &SweeperService{
		store:    store,
		idleTTL:  idleTTL,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the sweep on schedule until ctx is cancelled.
func (s *SweeperService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(s.schedule, func() { s.Sweep() }); err != nil {
		return fmt.Errorf("add sweep job %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("session sweeper started", zap.String("schedule", s.schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")
	return nil
}

// Sweep evicts idle sessions and returns how many were removed.
func (s *SweeperService) Sweep() int {
	evicted := s.store.Evict(s.now().Add(-s.idleTTL))
	for _, e := range evicted {
		s.logger.Debug("idle session evicted",
			zap.Int64("chat_id", e.ChatID),
			zap.String("game", string(e.Kind)),
		)
	}
	if len(evicted) > 0 {
		s.logger.Info("idle sessions evicted",
			zap.Int("count", len(evicted)),
			zap.Int("active", s.store.Len()),
		)
	}
	return len(evicted)
}
