package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/infra/postgres"
)

var analyticsColumns = []string{"name", "chat_id", "game", "session_id", "attrs", "occurred_at"}

// AnalyticsRepository stores interaction events.
type AnalyticsRepository struct {
	db postgres.DBTX
}

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(db postgres.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// InsertEvents bulk-inserts events with COPY.
func (r *AnalyticsRepository) InsertEvents(ctx context.Context, events []entities.AnalyticsEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(events))
	for _, ev := range events {
		attrs := ev.Attrs
		if attrs == nil {
			attrs = map[string]any{}
		}
		rows = append(rows, []any{
			ev.Name,
			ev.ChatID,
			string(ev.Game),
			ev.SessionID,
			attrs,
			ev.OccurredAt,
		})
	}

	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"analytics_events"}, analyticsColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy analytics events: %w", err)
	}
	if int(n) != len(events) {
		return fmt.Errorf("copy analytics events: wrote %d of %d", n, len(events))
	}

	return nil
}
