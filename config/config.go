package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Session configuration
	JWTSecret     string
	SessionStore  string
	SessionTTL    time.Duration
	CookRateLimit int
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// PostgresDSN builds the key/value connection string for the postgres driver
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisAddr returns host:port for the Redis server
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// loadCIConfig reads everything from the environment, secrets included
func loadCIConfig(cfg *Config) error {
	loadFromEnv(cfg, defaultsFor(CI))

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required in CI environment")
	}
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	return parseDerived(cfg)
}

// loadDevConfig reads a local .env file when present, then the environment,
// falling back to defaults that run the service on sqlite and in-memory sessions.
func loadDevConfig(cfg *Config) error {
	_ = godotenv.Load()

	loadFromEnv(cfg, defaultsFor(Development))
	cfg.DBPassword = getEnv("DB_PASSWORD", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.JWTSecret = getEnv("JWT_SECRET", "dev-secret-change-me")

	return parseDerived(cfg)
}

// loadProdConfig reads plain settings from the environment and credentials
// from Docker secrets only
func loadProdConfig(cfg *Config) error {
	loadFromEnv(cfg, defaultsFor(Production))
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.JWTSecret = readSecret("jwt_secret")
	if url := readSecret("redis_url"); url != "" {
		cfg.RedisURL = url
	}

	return parseDerived(cfg)
}

func loadFromEnv(cfg *Config, defaults map[string]string) {
	get := func(key string) string {
		return getEnv(key, defaults[key])
	}

	cfg.ServerPort = get("SERVER_PORT")
	cfg.ServerHost = get("SERVER_HOST")
	cfg.DBDriver = get("DB_DRIVER")
	cfg.DBHost = get("DB_HOST")
	cfg.DBPort = get("DB_PORT")
	cfg.DBUser = get("DB_USER")
	cfg.DBName = get("DB_NAME")
	cfg.DBSSLMode = get("DB_SSL_MODE")
	cfg.DBPath = get("DB_PATH")
	cfg.RedisHost = get("REDIS_HOST")
	cfg.RedisPort = get("REDIS_PORT")
	cfg.RedisURL = get("REDIS_URL")
	cfg.SessionStore = get("SESSION_STORE")
	cfg.RedisDB = 0 // This is a constant, not a secret

	if origins := get("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
}

// parseDerived converts the non-string settings
func parseDerived(cfg *Config) error {
	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	limit, err := strconv.Atoi(getEnv("COOK_RATE_LIMIT", "60"))
	if err != nil {
		return fmt.Errorf("invalid COOK_RATE_LIMIT: %w", err)
	}
	cfg.CookRateLimit = limit

	return nil
}

func defaultsFor(env Environment) map[string]string {
	defaults := map[string]string{
		"SERVER_PORT":   "8080",
		"SERVER_HOST":   "0.0.0.0",
		"DB_DRIVER":     DriverPostgres,
		"DB_HOST":       "localhost",
		"DB_PORT":       "5432",
		"DB_USER":       "postgres",
		"DB_NAME":       "gilded_spoon",
		"DB_SSL_MODE":   "disable",
		"REDIS_HOST":    "localhost",
		"REDIS_PORT":    "6379",
		"SESSION_STORE": StoreRedis,
		"CORS_ORIGINS":  "http://localhost:5173",
	}
	if env == Development || env == Test {
		defaults["DB_DRIVER"] = DriverSQLite
		defaults["DB_PATH"] = "gilded_spoon.db"
		defaults["SESSION_STORE"] = StoreMemory
	}
	return defaults
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
