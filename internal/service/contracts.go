package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/storage"
)

// ContentProvider exposes the static vocabulary and question sets.
type ContentProvider interface {
	Words() []entities.TimeWord
	Questions() []entities.QuizQuestion
	Scenarios() []entities.Scenario
	Quests() []entities.ConversionQuest
}

// EventStore persists a batch of analytics events.
type EventStore interface {
	SaveEvents(ctx context.Context, events []entities.AnalyticsEvent) error
}

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// SessionStore holds the active game of every chat.
type SessionStore interface {
	Evict(idleSince time.Time) []storage.Evicted
	Len() int
}
