package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/time-explorer-bot/internal/config"
)

// New returns a JSON production logger in production and a console
// development logger everywhere else.
func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if cfg.Env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return log.With(zap.String("env", cfg.Env)), nil
}
