package config_test

import (
	"testing"

	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/config"

	"github.com/stretchr/testify/assert"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.FromEnv(envOf(map[string]string{"JWT_SECRET": "secret"}))

		assert.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, 5, cfg.Database.MaxRetries)
		assert.False(t, cfg.Database.AutoMigrate)
		assert.Equal(t, 10.0, cfg.RateLimitRPS)
		assert.Equal(t, 20, cfg.RateLimitBurst)
		assert.Nil(t, cfg.AllowedOrigins)
		assert.False(t, cfg.SMTP.Enabled())
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := config.FromEnv(envOf(map[string]string{
			"JWT_SECRET":           "secret",
			"PORT":                 "8080",
			"DB_DRIVER":            "sqlite",
			"DB_SQLITE_PATH":       "/tmp/hrm.db",
			"DB_AUTO_MIGRATE":      "true",
			"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test,",
			"SMTP_HOST":            "smtp.test",
			"NOTIFY_FROM":          "hr@test",
		}))

		assert.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, "/tmp/hrm.db", cfg.Database.SQLitePath)
		assert.True(t, cfg.Database.AutoMigrate)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
		assert.True(t, cfg.SMTP.Enabled())
	})

	t.Run("negative missing jwt secret", func(t *testing.T) {
		_, err := config.FromEnv(envOf(map[string]string{}))
		assert.EqualError(t, err, "JWT_SECRET is required")
	})

	t.Run("negative unsupported driver", func(t *testing.T) {
		_, err := config.FromEnv(envOf(map[string]string{"JWT_SECRET": "x", "DB_DRIVER": "mysql"}))
		assert.Error(t, err)
	})

	t.Run("negative bad number", func(t *testing.T) {
		_, err := config.FromEnv(envOf(map[string]string{"JWT_SECRET": "x", "RATE_LIMIT_BURST": "many"}))
		assert.Error(t, err)
	})
}

func TestDatabaseFromEnv(t *testing.T) {
	t.Run("success without jwt secret", func(t *testing.T) {
		db, err := config.DatabaseFromEnv(envOf(map[string]string{"DB_DRIVER": "sqlite"}))

		assert.NoError(t, err)
		assert.Equal(t, config.DriverSQLite, db.Driver)
		assert.Equal(t, "orangehrm.db", db.SQLitePath)
		assert.Equal(t, 5, db.MaxRetries)
	})

	t.Run("negative bad retries", func(t *testing.T) {
		_, err := config.DatabaseFromEnv(envOf(map[string]string{"DB_MAX_RETRIES": "-"}))
		assert.Error(t, err)
	})
}
