package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "")

	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "local", cfg.Env)
	assert.Empty(t, cfg.ContentPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.Game.AdvanceDelay)
	assert.Equal(t, time.Second, cfg.Game.RetryDelay)
	assert.Equal(t, 800*time.Millisecond, cfg.Game.MismatchDelay)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.IdleTTL)
	assert.Equal(t, "*/5 * * * *", cfg.Sessions.SweepSchedule)
	assert.Equal(t, 100, cfg.Analytics.BatchSize)

	_, err = cfg.DB.DSN()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")

	_, err := load(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env: production
content_path: /srv/content.json
game:
  advance_delay: 2s
  seed: 42
database:
  max_connections: 5
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/time")
	t.Setenv("GOOGLE_TTS_API_KEY", "tts-key")
	t.Setenv("APP_ENV", "")

	cfg, err := load(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/srv/content.json", cfg.ContentPath)
	assert.Equal(t, 2*time.Second, cfg.Game.AdvanceDelay)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 5, cfg.DB.MaxConnections)
	assert.Equal(t, "tts-key", cfg.TTS.APIKey)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/time", dsn)
}
