package omdb

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"reelfinder/errs"
	"reelfinder/movie"
	"reelfinder/pkg/sentry"

	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	DefaultBaseURL = "https://www.omdbapi.com/"
	DefaultTimeout = 10 * time.Second

	searchFailedMessage  = "Failed to search movies. Please try again."
	detailsFailedMessage = "Failed to fetch movie details. Please try again."
)

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// MaxRequestsPerSecond throttles outbound calls. Zero disables throttling.
	MaxRequestsPerSecond int

	Logger *slog.Logger
}

// Client talks to the OMDb catalog. Every call is a single request; retries
// are left to the caller.
type Client struct {
	baseURL string
	apiKey  string
	http    *resty.Client
	rl      ratelimit.Limiter
	logger  *slog.Logger
}

var _ movie.Repository = (*Client)(nil)

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	rl := ratelimit.NewUnlimited()
	if opts.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(opts.MaxRequestsPerSecond)
	}

	hc := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &Client{
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		http:    hc,
		rl:      rl,
		logger:  opts.Logger,
	}
}

func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) Search(ctx context.Context, q movie.Query) (movie.Page, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	params := map[string]string{
		"s":    q.Text,
		"page": strconv.Itoa(page),
	}
	if !q.Kind.IsAll() {
		params["type"] = string(q.Kind)
	}

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		c.logger.Error("omdb search failed",
			slog.String("query", q.Text),
			slog.Int("page", page),
			slog.Any("error", err),
		)
		sentry.WithTags(map[string]string{"component": "omdb", "op": "search"}).
			WithExtras(map[string]interface{}{"query": q.Text, "page": page}).
			Error(err)
		return movie.Page{}, errs.Errorf(errs.EUNAVAILABLE, searchFailedMessage)
	}

	if resp.Response != responseTrue {
		msg := strings.TrimSpace(resp.Error)
		if msg == "" {
			msg = "No movies found"
		}
		return movie.Page{}, errs.Errorf(errs.EUPSTREAM, "%s", msg)
	}

	return resp.toPage(page), nil
}

func (c *Client) Details(ctx context.Context, id string) (movie.Detail, error) {
	params := map[string]string{
		"i":    id,
		"plot": "full",
	}

	var resp detailResponse
	if err := c.get(ctx, params, &resp); err != nil {
		c.logger.Error("omdb details failed",
			slog.String("id", id),
			slog.Any("error", err),
		)
		sentry.WithTags(map[string]string{"component": "omdb", "op": "details"}).
			WithExtras(map[string]interface{}{"id": id}).
			Error(err)
		return movie.Detail{}, errs.Errorf(errs.EUNAVAILABLE, detailsFailedMessage)
	}

	if resp.Response != responseTrue {
		msg := strings.TrimSpace(resp.Error)
		if msg == "" {
			msg = "Movie not found"
		}
		return movie.Detail{}, errs.Errorf(errs.ENOTFOUND, "%s", msg)
	}

	return resp.toDetail(), nil
}

// get issues one GET against the catalog and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, params map[string]string, out any) error {
	c.rl.Take()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("apikey", c.apiKey).
		SetQueryParams(params).
		SetForceResponseContentType("application/json").
		SetResult(out).
		Get(c.baseURL)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("unexpected status: %d %s", resp.StatusCode(), resp.Status())
	}
	return nil
}
