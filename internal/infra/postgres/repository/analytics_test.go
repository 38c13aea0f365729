package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
)

// copyRecorder is a DBTX that only supports CopyFrom.
type copyRecorder struct {
	table   pgx.Identifier
	columns []string
	rows    [][]any
	err     error
}

func (c *copyRecorder) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (c *copyRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (c *copyRecorder) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (c *copyRecorder) CopyFrom(_ context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.table, c.columns = table, columns
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		c.rows = append(c.rows, values)
	}
	return int64(len(c.rows)), src.Err()
}

func TestAnalyticsRepository_InsertEvents(t *testing.T) {
	db := &copyRecorder{}
	repo := NewAnalyticsRepository(db)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	err := repo.InsertEvents(context.Background(), []entities.AnalyticsEvent{
		{Name: "game_opened", ChatID: 10, Game: entities.GameQuiz, OccurredAt: at},
		{Name: "round_resolved", ChatID: 10, Game: entities.GameQuiz, SessionID: "s1", Attrs: map[string]any{"correct": true}, OccurredAt: at},
	})
	require.NoError(t, err)

	assert.Equal(t, pgx.Identifier{"analytics_events"}, db.table)
	assert.Equal(t, analyticsColumns, db.columns)
	require.Len(t, db.rows, 2)
	assert.Equal(t, []any{"game_opened", int64(10), "quiz", "", map[string]any{}, at}, db.rows[0])
	assert.Equal(t, map[string]any{"correct": true}, db.rows[1][4])
}

func TestAnalyticsRepository_InsertNothing(t *testing.T) {
	db := &copyRecorder{err: errors.New("must not be called")}
	repo := NewAnalyticsRepository(db)

	assert.NoError(t, repo.InsertEvents(context.Background(), nil))
}

func TestAnalyticsRepository_CopyError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := NewAnalyticsRepository(&copyRecorder{err: boom})

	err := repo.InsertEvents(context.Background(), []entities.AnalyticsEvent{{Name: "x"}})
	assert.ErrorIs(t, err, boom)
}
