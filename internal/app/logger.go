package app

import (
	"fmt"

	"go.uber.org/zap"
)

// initLogger создает и настраивает логгер.
// "production" включает JSON формат, явный уровень (debug, warn, ...) меняет уровень development логгера.
func initLogger(logLevel string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	switch logLevel {
	case "production":
		logger, err = zap.NewProduction()
	case "", "development":
		logger, err = zap.NewDevelopment()
	default:
		lvl, parseErr := zap.ParseAtomicLevel(logLevel)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", logLevel, parseErr)
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = lvl
		logger, err = cfg.Build()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
