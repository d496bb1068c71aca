// Package search owns the state of one search session: the current query,
// filter and page, the last result set and the published URL parameters.
package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"reelfinder/errs"
	"reelfinder/movie"
)

const genericSearchError = "Failed to search movies. Please try again."

var ErrPageOutOfRange = errs.Errorf(errs.EINVALID, "page out of range")

// Catalog is the slice of movie.Service the controller needs.
type Catalog interface {
	Search(ctx context.Context, q movie.Query) (movie.Page, error)
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithScrollTop registers a hook run after every accepted page change.
func WithScrollTop(fn func()) Option {
	return func(c *Controller) {
		c.onScrollTop = fn
	}
}

// Controller drives a search session. It is safe for concurrent use; when
// searches overlap only the most recently issued one updates the state.
//
// Listeners run outside the state lock but serially, and must not call
// back into the controller synchronously.
type Controller struct {
	catalog     Catalog
	logger      *slog.Logger
	onScrollTop func()

	mu        sync.Mutex
	state     State
	params    Params
	last      movie.Query
	gen       uint64
	version   uint64
	listeners map[uint64]func(State)
	nextID    uint64

	pubMu     sync.Mutex
	published uint64
}

func NewController(catalog Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog:   catalog,
		logger:    slog.Default(),
		state:     State{Kind: movie.KindAll, Page: 1, Status: StatusIdle},
		listeners: make(map[uint64]func(State)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned func removes it.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Params returns the URL parameters published by the last successful
// search. The zero value means nothing has been published yet.
func (c *Controller) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Activate seeds the session from URL parameters and, when they carry a
// query, searches right away.
func (c *Controller) Activate(ctx context.Context, p Params) error {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Kind == "" {
		p.Kind = movie.KindAll
	}
	p.Query = strings.TrimSpace(p.Query)

	if p.Query == "" {
		c.update(func(s *State) {
			s.Kind = p.Kind
		})
		return nil
	}
	return c.run(ctx, p.query())
}

// SubmitSearch starts a new search from page 1. A blank query is rejected
// with movie.ErrEmptyQuery and leaves the prior results untouched.
func (c *Controller) SubmitSearch(ctx context.Context, query string, kind movie.Kind) error {
	query = strings.TrimSpace(query)
	if query == "" {
		c.update(func(s *State) {
			s.Notice = errs.ErrorMessage(movie.ErrEmptyQuery)
		})
		return movie.ErrEmptyQuery
	}
	k, err := movie.ParseKind(string(kind))
	if err != nil {
		return err
	}
	return c.run(ctx, movie.Query{Text: query, Page: 1, Kind: k})
}

// ChangePage re-runs the current search at page, which must lie within
// the known result range.
func (c *Controller) ChangePage(ctx context.Context, page int) error {
	c.mu.Lock()
	q := c.last
	total := c.state.TotalPages()
	c.mu.Unlock()

	if q.Text == "" || page < 1 || page > total {
		return ErrPageOutOfRange
	}
	if c.onScrollTop != nil {
		c.onScrollTop()
	}
	q.Page = page
	return c.run(ctx, q)
}

// ChangeKindFilter switches the filter. Before the first search it only
// records the pending value.
func (c *Controller) ChangeKindFilter(ctx context.Context, kind movie.Kind) error {
	k, err := movie.ParseKind(string(kind))
	if err != nil {
		return err
	}

	c.mu.Lock()
	q := c.last
	searched := c.state.Searched
	c.mu.Unlock()

	if !searched {
		c.update(func(s *State) {
			s.Kind = k
			s.Page = 1
		})
		return nil
	}
	q.Kind = k
	q.Page = 1
	return c.run(ctx, q)
}

// RetryLastSearch re-issues the most recent query, page and filter. It is
// a no-op before the first search.
func (c *Controller) RetryLastSearch(ctx context.Context) error {
	c.mu.Lock()
	q := c.last
	c.mu.Unlock()

	if q.Text == "" {
		return nil
	}
	return c.run(ctx, q)
}

// run performs one search. The returned error mirrors the failure stored
// in the state; a response overtaken by a newer search is dropped and
// reported as nil.
func (c *Controller) run(ctx context.Context, q movie.Query) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.last = q
	c.state.Query = q.Text
	c.state.Kind = q.Kind
	c.state.Page = q.Page
	c.state.Items = nil
	c.state.Err = ""
	c.state.ErrRetryable = false
	c.state.Notice = ""
	c.state.Searched = true
	c.state.Status = StatusLoading
	snap, version := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap, version)

	page, err := c.catalog.Search(ctx, q)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug("dropping stale search response",
			slog.String("query", q.Text),
			slog.Int("page", q.Page),
		)
		return nil
	}

	if last := movie.TotalPages(page.TotalResults, movie.PageSize); err == nil && last > 0 && q.Page > last {
		c.mu.Unlock()
		c.logger.Debug("page beyond results, loading last page",
			slog.String("query", q.Text),
			slog.Int("page", q.Page),
			slog.Int("last", last),
		)
		q.Page = last
		return c.run(ctx, q)
	}

	if err != nil {
		c.state.Items = nil
		c.state.TotalResults = 0
		c.state.Status = StatusFailed
		c.state.Err = failureMessage(err)
		c.state.ErrRetryable = retryable(err)
	} else {
		c.state.Items = page.Items
		c.state.TotalResults = page.TotalResults
		if len(page.Items) == 0 {
			c.state.Status = StatusEmpty
		} else {
			c.state.Status = StatusResults
		}
		c.params = Params{Query: q.Text, Page: q.Page, Kind: q.Kind}
	}
	snap, version = c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap, version)

	if err != nil {
		c.logger.Warn("search failed",
			slog.String("query", q.Text),
			slog.Int("page", q.Page),
			slog.String("kind", string(q.Kind)),
			slog.String("code", errs.ErrorCode(err)),
		)
	}
	return err
}

func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	snap, version := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap, version)
}

func (c *Controller) snapshotLocked() (State, uint64) {
	c.version++
	c.state.Version = c.version
	return c.state.clone(), c.version
}

// publish delivers snap unless a newer snapshot already went out.
func (c *Controller) publish(snap State, version uint64) {
	c.mu.Lock()
	listeners := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	c.pubMu.Lock()
	defer c.pubMu.Unlock()
	if version <= c.published {
		return
	}
	c.published = version
	for _, fn := range listeners {
		fn(snap)
	}
}

// failureMessage keeps catalog reported messages verbatim and collapses
// anything else to the generic one.
func failureMessage(err error) string {
	switch errs.ErrorCode(err) {
	case errs.EUPSTREAM, errs.EUNAVAILABLE, errs.EINVALID, errs.ENOTFOUND:
		return errs.ErrorMessage(err)
	default:
		return genericSearchError
	}
}

func retryable(err error) bool {
	return errs.Retryable(err) || errs.ErrorCode(err) == errs.EINTERNAL
}
