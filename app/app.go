// Package app assembles the catalog service from configuration.
package app

import (
	"context"
	"errors"
	"log/slog"

	"reelfinder/cache"
	"reelfinder/movie"
	"reelfinder/omdb"
	"reelfinder/pkg/config"
)

// Catalog is the configured movie service plus the resources it holds.
type Catalog struct {
	*movie.Usecase

	closers []func() error
}

// NewCatalog wires the OMDb client behind the configured cache driver.
func NewCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Catalog, error) {
	if cfg.OMDb.APIKey == "" {
		return nil, errors.New("OMDB_API_KEY is not set")
	}

	client := omdb.NewClient(omdb.Options{
		BaseURL:              cfg.OMDb.BaseURL,
		APIKey:               cfg.OMDb.APIKey,
		Timeout:              cfg.OMDbTimeout(),
		MaxRequestsPerSecond: cfg.OMDb.MaxRPS,
		Logger:               logger,
	})
	c := &Catalog{closers: []func() error{client.Close}}

	var repo movie.Repository = client
	switch cfg.Cache.Driver {
	case config.CacheMemory:
		repo = cache.NewRepository(client, cache.NewMemoryStore(), cfg.CacheTTL(), logger)
	case config.CacheRedis:
		rdb, err := cache.NewRedisClient(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.closers = append(c.closers, rdb.Close)
		repo = cache.NewRepository(client, cache.NewRedisStore(rdb), cfg.CacheTTL(), logger)
	}
	logger.Info("catalog ready", slog.String("cache", cfg.Cache.Driver))

	c.Usecase = movie.NewUsecase(repo)
	return c, nil
}

func (c *Catalog) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
