package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr       = ":9000"
	defaultPageSize       = 20
	defaultMaxPageSize    = 100
	defaultUserCacheSize  = 1024
	defaultMigrationsPath = "file://internal/shared/db/migrations/sql"
)

// DBConfig holds the postgres connection settings
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the postgres URL used by pgxpool and golang-migrate
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Config is the whole process configuration, read once at startup
type Config struct {
	HTTPAddr        string
	LogEnv          string
	LogLevel        string
	DefaultPageSize int
	MaxPageSize     int
	UserCacheSize   int
	MigrationsPath  string
	DB              DBConfig
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", defaultHTTPAddr),
		LogEnv:         getEnv("LOG_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", defaultMigrationsPath),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	var err error
	if cfg.DefaultPageSize, err = getEnvInt("DEFAULT_PAGE_SIZE", defaultPageSize); err != nil {
		return nil, err
	}
	if cfg.MaxPageSize, err = getEnvInt("MAX_PAGE_SIZE", defaultMaxPageSize); err != nil {
		return nil, err
	}
	if cfg.UserCacheSize, err = getEnvInt("USER_CACHE_SIZE", defaultUserCacheSize); err != nil {
		return nil, err
	}
	if cfg.DefaultPageSize > cfg.MaxPageSize {
		return nil, fmt.Errorf("config: DEFAULT_PAGE_SIZE (%d) exceeds MAX_PAGE_SIZE (%d)", cfg.DefaultPageSize, cfg.MaxPageSize)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %d", key, v)
	}
	return v, nil
}
