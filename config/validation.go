package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded values and reports every problem at once
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	require := func(field, value string) {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("SERVER_PORT", cfg.ServerPort)
	require("JWT_SECRET", cfg.JWTSecret)

	switch cfg.DBDriver {
	case DriverPostgres:
		require("DB_HOST", cfg.DBHost)
		require("DB_PORT", cfg.DBPort)
		require("DB_USER", cfg.DBUser)
		require("DB_NAME", cfg.DBName)
	case DriverSQLite:
		require("DB_PATH", cfg.DBPath)
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	switch cfg.SessionStore {
	case StoreRedis:
		if cfg.RedisURL == "" {
			require("REDIS_HOST", cfg.RedisHost)
			require("REDIS_PORT", cfg.RedisPort)
		}
	case StoreMemory:
	default:
		errs = append(errs, ValidationError{Field: "SESSION_STORE", Message: fmt.Sprintf("unsupported store %q", cfg.SessionStore)})
	}

	if cfg.SessionTTL <= 0 {
		errs = append(errs, ValidationError{Field: "SESSION_TTL", Message: "must be positive"})
	}
	if cfg.CookRateLimit < 0 {
		errs = append(errs, ValidationError{Field: "COOK_RATE_LIMIT", Message: "must not be negative"})
	}

	if GetEnvironment() == Production && cfg.DBDriver == DriverPostgres && cfg.DBPassword == "" {
		errs = append(errs, ValidationError{Field: "db_password", Message: "secret is required"})
	}

	if len(errs) > 0 {
		lines := make([]string, len(errs))
		for i, e := range errs {
			lines[i] = e.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
	}

	return nil
}
