package commands

import (
	"fmt"

	"summary_service/internal/pkg/config"
	"summary_service/internal/pkg/logger"
)

// setupLogger initializes the console logger shared by all CLI commands
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
