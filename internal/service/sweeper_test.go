package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/time-explorer-bot/internal/storage"
)

type closeCounter struct{ closed int }

func (c *closeCounter) Close() { c.closed++ }

func TestSweeper_EvictsIdleSessions(t *testing.T) {
	store := storage.NewSessionStorage()
	g := &closeCounter{}
	store.Store(1, entities.GameMatching, g)

	sw := NewSweeperService(store, 30*time.Minute, "@every 1m", zap.NewNop())

	assert.Equal(t, 0, sw.Sweep(), "fresh session is kept")

	sw.now = func() time.Time { return time.Now().Add(time.Hour) }
	assert.Equal(t, 1, sw.Sweep())
	assert.Equal(t, 1, g.closed)
	assert.Equal(t, 0, store.Len())
}

func TestSweeper_InvalidSchedule(t *testing.T) {
	sw := NewSweeperService(storage.NewSessionStorage(), time.Minute, "not a schedule", zap.NewNop())

	err := sw.Start(context.Background())
	require.Error(t, err)
}

func TestSweeper_StopsWithContext(t *testing.T) {
	sw := NewSweeperService(storage.NewSessionStorage(), time.Minute, "@every 1h", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sw.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
