// nolint: funlen
package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelfinder/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads config from environment variables", func(t *testing.T) {
		// Setup environment variables
		envVars := map[string]string{
			"APP_ENV":        "test",
			"PORT":           "9090",
			"SENTRY_DSN":     "https://test@sentry.io/123",
			"ALLOW_ORIGINS":  "https://a.example, https://b.example",
			"LOG_LEVEL":      "debug",
			"RATE_LIMIT":     "5",
			"OMDB_API_KEY":   "abc123",
			"OMDB_BASE_URL":  "http://localhost:9999/",
			"OMDB_TIMEOUT":   "3",
			"OMDB_MAX_RPS":   "4",
			"CACHE_DRIVER":   "Redis",
			"CACHE_TTL":      "60",
			"REDIS_ADDR":     "redis:6379",
			"REDIS_PASSWORD": "secret",
			"REDIS_DB":       "2",
		}

		// Set environment variables
		for key, value := range envVars {
			t.Setenv(key, value)
		}

		// Load config
		cfg, err := config.LoadConfig()

		// Assertions
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "https://test@sentry.io/123", cfg.SentryDSN)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 5.0, cfg.RateLimit)
		assert.Equal(t, "abc123", cfg.OMDb.APIKey)
		assert.Equal(t, "http://localhost:9999/", cfg.OMDb.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.OMDbTimeout())
		assert.Equal(t, 4, cfg.OMDb.MaxRPS)
		assert.Equal(t, config.CacheRedis, cfg.Cache.Driver)
		assert.Equal(t, time.Minute, cfg.CacheTTL())
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, "secret", cfg.Redis.Password)
		assert.Equal(t, 2, cfg.Redis.DB)
	})

	t.Run("applies defaults", func(t *testing.T) {
		for _, key := range []string{"APP_ENV", "PORT", "ALLOW_ORIGINS", "OMDB_BASE_URL", "OMDB_TIMEOUT", "CACHE_DRIVER", "CACHE_TTL"} {
			// register restore, then unset so defaults apply
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, []string{"*"}, cfg.Origins())
		assert.Equal(t, "https://www.omdbapi.com/", cfg.OMDb.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.OMDbTimeout())
		assert.Equal(t, config.CacheMemory, cfg.Cache.Driver)
		assert.Equal(t, 15*time.Minute, cfg.CacheTTL())
	})

	t.Run("handles invalid port number", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles invalid timeout", func(t *testing.T) {
		t.Setenv("OMDB_TIMEOUT", "soon")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})

	t.Run("handles unknown cache driver", func(t *testing.T) {
		t.Setenv("CACHE_DRIVER", "memcached")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "unknown cache driver")
	})
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("filters below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := config.SetupLogger("warn", &buf)

		logger.Info("hidden")
		logger.Warn("shown", "key", "value")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"key":"value"`)
	})

	t.Run("falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := config.SetupLogger("chatty", &buf)

		assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
		assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("installs the default logger", func(t *testing.T) {
		var buf bytes.Buffer
		config.SetupLogger("debug", &buf)

		slog.Debug("via default")

		assert.Contains(t, buf.String(), "via default")
	})
}
