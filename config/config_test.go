package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("SEED_DATABASE", "TRUE")
	t.Setenv("DB_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.SeedDatabase)
	assert.Equal(t, "warn", cfg.DBLogLevel)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "  ")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestParseCorsOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseCorsOrigins(""))
	assert.Equal(t, []string{"*"}, parseCorsOrigins(" , "))
	assert.Equal(t, []string{"http://localhost:3000"}, parseCorsOrigins("http://localhost:3000"))
}

func TestResolveMySQLConfig(t *testing.T) {
	t.Run("from mysql url", func(t *testing.T) {
		t.Setenv("MYSQL_URL", "mysql://app:pw@db.internal/hotel?timeout=5s&loc=UTC")
		t.Setenv("DATABASE_URL", "")

		cfg, err := resolveMySQLConfig()
		require.NoError(t, err)
		assert.Equal(t, "app", cfg.User)
		assert.Equal(t, "pw", cfg.Passwd)
		assert.Equal(t, "db.internal:3306", cfg.Addr)
		assert.Equal(t, "hotel", cfg.DBName)
		assert.True(t, cfg.ParseTime)
		assert.Equal(t, time.UTC, cfg.Loc)
		assert.Equal(t, "5s", cfg.Params["timeout"])
		assert.Equal(t, "utf8mb4", cfg.Params["charset"])
	})

	t.Run("mysql url without database", func(t *testing.T) {
		t.Setenv("MYSQL_URL", "mysql://app:pw@db.internal:3307/")

		_, err := resolveMySQLConfig()
		assert.Error(t, err)
	})

	t.Run("raw dsn", func(t *testing.T) {
		t.Setenv("MYSQL_URL", "")
		t.Setenv("DATABASE_URL", "u:p@tcp(10.0.0.1:3306)/events?parseTime=true")

		cfg, err := resolveMySQLConfig()
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.1:3306", cfg.Addr)
		assert.Equal(t, "events", cfg.DBName)
	})

	t.Run("from db variables", func(t *testing.T) {
		t.Setenv("MYSQL_URL", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_USER", "booker")
		t.Setenv("DB_PASS", "pw")
		t.Setenv("DB_HOST", "mysql")
		t.Setenv("DB_PORT", "3310")
		t.Setenv("DB_NAME", "")

		cfg, err := resolveMySQLConfig()
		require.NoError(t, err)
		assert.Equal(t, "booker", cfg.User)
		assert.Equal(t, "mysql:3310", cfg.Addr)
		assert.Equal(t, "hotel_booking", cfg.DBName)
		assert.Contains(t, cfg.FormatDSN(), "booker:pw@tcp(mysql:3310)/hotel_booking")
	})
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLogLevel("silent"))
	assert.Equal(t, logger.Error, gormLogLevel("ERROR"))
	assert.Equal(t, logger.Info, gormLogLevel("info"))
	assert.Equal(t, logger.Warn, gormLogLevel("nonsense"))
}
