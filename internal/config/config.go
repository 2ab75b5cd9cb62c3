package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver      string
	Host        string
	User        string
	Password    string
	Name        string
	Port        string
	SSLMode     string
	SQLitePath  string
	MaxRetries  int
	AutoMigrate bool
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Enabled reports whether enough SMTP settings exist to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Port != "" && c.From != ""
}

type Config struct {
	Port           string
	Database       DatabaseConfig
	RedisAddr      string
	KafkaBroker    string
	JWTSecret      string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	SMTP           SMTPConfig
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// LoadDatabase reads only the database settings; the migrate command needs nothing else.
func LoadDatabase() (DatabaseConfig, error) {
	_ = godotenv.Load()
	return DatabaseFromEnv(os.Getenv)
}

func DatabaseFromEnv(getenv func(string) string) (DatabaseConfig, error) {
	return databaseFromEnv(lookup(getenv), getenv)
}

func lookup(getenv func(string) string) func(key, fallback string) string {
	return func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}
}

func databaseFromEnv(get func(key, fallback string) string, getenv func(string) string) (DatabaseConfig, error) {
	retries, err := strconv.Atoi(get("DB_MAX_RETRIES", "5"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}
	autoMigrate, err := strconv.ParseBool(get("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	db := DatabaseConfig{
		Driver:      get("DB_DRIVER", DriverPostgres),
		Host:        get("DB_HOST", "localhost"),
		User:        get("DB_USER", "postgres"),
		Password:    getenv("DB_PASSWORD"),
		Name:        get("DB_NAME", "orangehrm"),
		Port:        get("DB_PORT", "5432"),
		SSLMode:     get("DB_SSLMODE", "disable"),
		SQLitePath:  get("DB_SQLITE_PATH", "orangehrm.db"),
		MaxRetries:  retries,
		AutoMigrate: autoMigrate,
	}

	switch db.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return DatabaseConfig{}, fmt.Errorf("unsupported DB_DRIVER: %s", db.Driver)
	}
	return db, nil
}

// FromEnv builds a Config from a lookup function, so tests do not touch the real environment.
func FromEnv(getenv func(string) string) (Config, error) {
	get := lookup(getenv)

	db, err := databaseFromEnv(get, getenv)
	if err != nil {
		return Config{}, err
	}
	rps, err := strconv.ParseFloat(get("RATE_LIMIT_RPS", "10"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(get("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	cfg := Config{
		Port:           get("PORT", "3000"),
		Database:       db,
		RedisAddr:      getenv("REDIS_ADDR"),
		KafkaBroker:    getenv("KAFKA_BROKER"),
		JWTSecret:      getenv("JWT_SECRET"),
		AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS")),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST"),
			Port:     get("SMTP_PORT", "587"),
			Username: getenv("SMTP_USERNAME"),
			Password: getenv("SMTP_PASSWORD"),
			From:     getenv("NOTIFY_FROM"),
		},
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
