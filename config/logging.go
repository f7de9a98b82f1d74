package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildLogger constructs the application logger from the logging section.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(defaultString(c.Logging.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("config: logging level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = defaultString(c.Logging.Format, "json")
	if c.Logging.Path != "" {
		zcfg.OutputPaths = []string{c.Logging.Path}
		zcfg.ErrorOutputPaths = []string{c.Logging.Path}
	}

	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}
	return log, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
