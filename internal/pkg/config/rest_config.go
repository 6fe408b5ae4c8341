package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Environment name constants
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "production"
)

// Default listener port when PORT is not set
const DefaultPort = "8000"

// RestConfig holds all settings for the REST application. It is constructed
// once at startup via LoadRestConfig and passed explicitly to whatever needs
// it; there is no package-level cached instance.
type RestConfig struct {
	Environment string `validate:"required"`
	Testing     bool
	DatabaseURL string `validate:"required,url"`
	Port        string `validate:"required,numeric"`
	Logger      LoggerSettings
}

// LoadRestConfig builds a RestConfig from process environment variables.
// DATABASE_URL is required; construction fails before any listener is bound
// if it is absent or not a URL.
func LoadRestConfig() (*RestConfig, error) {
	cfg := &RestConfig{
		Environment: getEnv("ENVIRONMENT", EnvironmentDev),
		Testing:     getEnvBool("TESTING", false),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        getEnv("PORT", DefaultPort),
		Logger: LoggerSettings{
			LogLevel:   getEnv("LOG_LEVEL", LogLevelInfo),
			LogType:    getEnv("LOG_TYPE", LogTypeConsole),
			FilePath:   os.Getenv("LOG_FILE_PATH"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 10),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 28),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("validation failed for logger settings: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvBool parses the variable strictly; non-boolean values fall back
// rather than being treated as truthy.
func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}
