package app_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"reelfinder/app"
	"reelfinder/movie"
	"reelfinder/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(baseURL, driver string) *config.Config {
	cfg := new(config.Config)
	cfg.OMDb.APIKey = "key"
	cfg.OMDb.BaseURL = baseURL
	cfg.OMDb.Timeout = 5
	cfg.Cache.Driver = driver
	cfg.Cache.TTL = 60
	return cfg
}

// nolint: funlen
func TestNewCatalog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newUpstream := func(calls *atomic.Int32) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Search":[{"Title":"Batman Begins","Year":"2005","imdbID":"tt0372784","Type":"movie","Poster":"N/A"}],"totalResults":"1","Response":"True"}`))
		}))
	}

	t.Run("missing api key", func(t *testing.T) {
		cfg := newConfig("http://localhost", config.CacheNone)
		cfg.OMDb.APIKey = ""

		_, err := app.NewCatalog(context.Background(), cfg, logger)

		assert.Error(t, err)
	})

	t.Run("memory cache serves repeats", func(t *testing.T) {
		// Arrange
		var calls atomic.Int32
		srv := newUpstream(&calls)
		defer srv.Close()
		c, err := app.NewCatalog(context.Background(), newConfig(srv.URL, config.CacheMemory), logger)
		require.NoError(t, err)
		defer c.Close()
		q := movie.Query{Text: "batman", Page: 1, Kind: movie.KindAll}

		// Act
		_, err = c.Search(context.Background(), q)
		require.NoError(t, err)
		page, err := c.Search(context.Background(), q)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, "Batman Begins", page.Items[0].Title)
	})

	t.Run("no cache hits upstream every time", func(t *testing.T) {
		var calls atomic.Int32
		srv := newUpstream(&calls)
		defer srv.Close()
		c, err := app.NewCatalog(context.Background(), newConfig(srv.URL, config.CacheNone), logger)
		require.NoError(t, err)
		defer c.Close()
		q := movie.Query{Text: "batman", Page: 1, Kind: movie.KindAll}

		_, _ = c.Search(context.Background(), q)
		_, _ = c.Search(context.Background(), q)

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("unreachable redis", func(t *testing.T) {
		cfg := newConfig("http://localhost", config.CacheRedis)
		cfg.Redis.Addr = "127.0.0.1:1"

		_, err := app.NewCatalog(context.Background(), cfg, logger)

		assert.Error(t, err)
	})
}
