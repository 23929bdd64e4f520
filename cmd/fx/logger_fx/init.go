package logger_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Module = fx.Provide(provideLogger)

func provideLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}
	return cfg.Build()
}
