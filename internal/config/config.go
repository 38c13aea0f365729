package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`          // current application environment (local, dev, production)
	TelegramAPIToken string    `mapstructure:"-"`            // Telegram API token loaded from environment
	ContentPath      string    `mapstructure:"content_path"` // JSON content file; empty uses the embedded set
	DB               DB        `mapstructure:"database"`     // database configuration section
	Game             Game      `mapstructure:"game"`         // game pacing
	TTS              TTS       `mapstructure:"tts"`          // pronunciation audio
	Sessions         Sessions  `mapstructure:"sessions"`     // idle session eviction
	Analytics        Analytics `mapstructure:"analytics"`    // event pipeline
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Game holds the default delays of timed transitions.
type Game struct {
	AdvanceDelay  time.Duration `mapstructure:"advance_delay"`  // correct answer -> next round
	RetryDelay    time.Duration `mapstructure:"retry_delay"`    // wrong answer -> same round
	MismatchDelay time.Duration `mapstructure:"mismatch_delay"` // matching cards flip back
	Seed          int64         `mapstructure:"seed"`           // shuffle seed, 0 = time based
}

// TTS configures Google Cloud Text-to-Speech.
type TTS struct {
	APIKey   string        `mapstructure:"-"`
	CacheDir string        `mapstructure:"cache_dir"`
	Language string        `mapstructure:"language"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type Sessions struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	SweepSchedule string        `mapstructure:"sweep_schedule"`
}

type Analytics struct {
	BufferSize    int           `mapstructure:"buffer_size"`
	BatchSize     int           `mapstructure:"batch_size"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(paths ...string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("content_path", "")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("game.advance_delay", "1500ms")
	v.SetDefault("game.retry_delay", "1s")
	v.SetDefault("game.mismatch_delay", "800ms")
	v.SetDefault("game.seed", 0)
	v.SetDefault("tts.cache_dir", "cache/tts")
	v.SetDefault("tts.language", "en-US")
	v.SetDefault("tts.timeout", "10s")
	v.SetDefault("sessions.idle_ttl", "30m")
	v.SetDefault("sessions.sweep_schedule", "*/5 * * * *")
	v.SetDefault("analytics.buffer_size", 1024)
	v.SetDefault("analytics.batch_size", 100)
	v.SetDefault("analytics.flush_interval", "5s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("tts_api_key", "GOOGLE_TTS_API_KEY")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("TELEGRAM_API_TOKEN: %w", ErrMissingEnvironmentVariables)
	}

	// The database is optional: without it analytics only go to the log.
	cfg.DB.URL = v.GetString("database_url")
	cfg.TTS.APIKey = v.GetString("tts_api_key")

	return &cfg, nil
}
