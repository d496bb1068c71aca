// Package cache keeps successful catalog responses for a while so repeated
// page views and detail visits do not spend upstream quota.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reelfinder/movie"
)

// ErrMiss is returned by a Store when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Repository is a read-through movie.Repository. Errors from the wrapped
// repository are returned as-is and never stored.
type Repository struct {
	next   movie.Repository
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

var _ movie.Repository = (*Repository)(nil)

func NewRepository(next movie.Repository, store Store, ttl time.Duration, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *Repository) Search(ctx context.Context, q movie.Query) (movie.Page, error) {
	key := searchKey(q)

	var page movie.Page
	if r.load(ctx, key, &page) {
		return page, nil
	}

	page, err := r.next.Search(ctx, q)
	if err != nil {
		return movie.Page{}, err
	}
	r.save(ctx, key, page)
	return page, nil
}

func (r *Repository) Details(ctx context.Context, id string) (movie.Detail, error) {
	key := "title:" + id

	var d movie.Detail
	if r.load(ctx, key, &d) {
		return d, nil
	}

	d, err := r.next.Details(ctx, id)
	if err != nil {
		return movie.Detail{}, err
	}
	r.save(ctx, key, d)
	return d, nil
}

func (r *Repository) load(ctx context.Context, key string, out any) bool {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			r.logger.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.logger.Warn("cache entry corrupt", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (r *Repository) save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		r.logger.Warn("cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := r.store.Set(ctx, key, raw, r.ttl); err != nil {
		r.logger.Warn("cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func searchKey(q movie.Query) string {
	kind := q.Kind
	if kind.IsAll() {
		kind = movie.KindAll
	}
	return fmt.Sprintf("search:%s:%d:%s", kind, q.Page, strings.ToLower(strings.TrimSpace(q.Text)))
}
