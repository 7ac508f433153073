package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. JSON output in production; set
// LOG_FORMAT=console for human-readable dev logs.
func NewLogger(format, serviceName string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if serviceName != "" {
		logger = logger.With(zap.String("service_name", serviceName))
	}
	return logger, nil
}
