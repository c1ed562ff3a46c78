package logger_fx

import (
	"log"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideLogger)

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}
