package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-payroll/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port               string
	DB                 connection.DBConfig
	DBMaxRetries       int
	RedisAddr          string
	KafkaBroker        string
	JWTSecret          string
	CORSAllowedOrigins []string
	OutboxPollInterval time.Duration
	// AutoMigrate creates or updates tables on startup (DB_AUTO_MIGRATE).
	AutoMigrate bool
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug(".env file not found, using environment variables")
	}

	cfg := Config{
		Port: getEnvOrDefault("PORT", "3000"),
		DB: connection.DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnvOrDefault("DB_NAME", "payroll"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	retries, err := strconv.Atoi(getEnvOrDefault("DB_MAX_RETRIES", "5"))
	if err != nil || retries < 1 {
		return Config{}, fmt.Errorf("DB_MAX_RETRIES must be a positive integer")
	}
	cfg.DBMaxRetries = retries

	poll, err := time.ParseDuration(getEnvOrDefault("OUTBOX_POLL_INTERVAL", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("OUTBOX_POLL_INTERVAL: %w", err)
	}
	cfg.OutboxPollInterval = poll

	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		migrate, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("DB_AUTO_MIGRATE: %w", err)
		}
		cfg.AutoMigrate = migrate
	}

	return cfg, nil
}

// RequireJWTSecret is checked by the API only; the CLI never resolves tokens.
func (c Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func (c Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
