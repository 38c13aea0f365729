package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/game"
	"github.com/aliskhannn/time-explorer-bot/internal/infra/postgres/repository"
)

// EventGameOpened is recorded when a chat starts a mini-game.
const EventGameOpened = "game_opened"

// AnalyticsConfig sizes the event pipeline.
type AnalyticsConfig struct {
	BufferSize    int
	BatchSize     int
	FlushInterval time.Duration
}

// AnalyticsService buffers interaction events and flushes them in batches.
// Recording never blocks: events are dropped when the buffer is full.
type AnalyticsService struct {
	store  EventStore // nil: events are only logged
	cfg    AnalyticsConfig
	events chan entities.AnalyticsEvent
	logger *zap.Logger

	dropped atomic.Int64
	now     func() time.Time
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(store EventStore, cfg AnalyticsConfig, logger *zap.Logger) *AnalyticsService {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1024
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 5 * time.Second
	}

	return &AnalyticsService{
		store:  store,
		cfg:    cfg,
		events: make(chan entities.AnalyticsEvent, cfg.BufferSize),
		logger: logger,
		now:    time.Now,
	}
}

// ForChat returns a recorder that attributes game events to chatID.
func (s *AnalyticsService) ForChat(chatID int64) game.Recorder {
	return chatRecorder{svc: s, chatID: chatID}
}

// Track records an event outside of a game session.
func (s *AnalyticsService) Track(chatID int64, name string, kind entities.GameKind, attrs map[string]any) {
	s.enqueue(entities.AnalyticsEvent{
		Name:       name,
		ChatID:     chatID,
		Game:       kind,
		Attrs:      attrs,
		OccurredAt: s.now().UTC(),
	})
}

// Dropped returns how many events were discarded because the buffer was full.
func (s *AnalyticsService) Dropped() int64 {
	return s.dropped.Load()
}

// Run flushes buffered events until ctx is cancelled, then drains the rest.
func (s *AnalyticsService) Run(ctx context.Context) {
	s.logger.Info("analytics service started")

	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]entities.AnalyticsEvent, 0, s.cfg.BatchSize)
	for {
		select {
		case ev := <-s.events:
			batch = append(batch, ev)
			if len(batch) >= s.cfg.BatchSize {
				s.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			batch = s.drain(batch)

			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			for len(batch) > 0 {
				n := min(len(batch), s.cfg.BatchSize)
				s.flush(flushCtx, batch[:n])
				batch = batch[n:]
			}
			cancel()

			s.logger.Info("analytics service stopped", zap.Int64("dropped", s.Dropped()))
			return
		}
	}
}

func (s *AnalyticsService) drain(batch []entities.AnalyticsEvent) []entities.AnalyticsEvent {
	for {
		select {
		case ev := <-s.events:
			batch = append(batch, ev)
		default:
			return batch
		}
	}
}

func (s *AnalyticsService) flush(ctx context.Context, batch []entities.AnalyticsEvent) {
	if s.store == nil {
		for _, ev := range batch {
			s.logger.Debug("analytics event",
				zap.String("event", ev.Name),
				zap.Int64("chat_id", ev.ChatID),
				zap.String("game", string(ev.Game)),
				zap.String("session_id", ev.SessionID),
				zap.Any("attrs", ev.Attrs),
			)
		}
		return
	}

	if err := s.store.SaveEvents(ctx, batch); err != nil {
		s.logger.Error("failed to save analytics events",
			zap.Int("count", len(batch)),
			zap.Error(err),
		)
	}
}

func (s *AnalyticsService) enqueue(ev entities.AnalyticsEvent) {
	select {
	case s.events <- ev:
	default:
		s.dropped.Add(1)
	}
}

type chatRecorder struct {
	svc    *AnalyticsService
	chatID int64
}

func (r chatRecorder) Record(name string, attrs map[string]any) {
	ev := entities.AnalyticsEvent{
		Name:       name,
		ChatID:     r.chatID,
		Attrs:      make(map[string]any, len(attrs)),
		OccurredAt: r.svc.now().UTC(),
	}
	for k, v := range attrs {
		switch k {
		case "game":
			if s, ok := v.(string); ok {
				ev.Game = entities.GameKind(s)
				continue
			}
		case "session_id":
			if s, ok := v.(string); ok {
				ev.SessionID = s
				continue
			}
		}
		ev.Attrs[k] = v
	}
	r.svc.enqueue(ev)
}

// TxEventStore writes event batches in a single transaction.
type TxEventStore struct {
	tr Transactor
}

// NewTxEventStore creates a new TxEventStore.
func NewTxEventStore(tr Transactor) *TxEventStore {
	return &TxEventStore{tr: tr}
}

// SaveEvents implements EventStore.
func (s *TxEventStore) SaveEvents(ctx context.Context, events []entities.AnalyticsEvent) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := repository.NewAnalyticsRepository(tx)
		if err := repo.InsertEvents(ctx, events); err != nil {
			return fmt.Errorf("insert events: %w", err)
		}
		return nil
	})
}
