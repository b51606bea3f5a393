package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the TVMaze API origin.
const DefaultBaseURL = "https://api.tvmaze.com/"

// DefaultUserAgent identifies show-scout to the catalog service.
const DefaultUserAgent = "show-scout/1.0 (+https://github.com/Digital-Shane/show-scout)"

// Fetcher is the read side of the catalog used by the UI and the subcommands.
type Fetcher interface {
	SearchShows(ctx context.Context, term string) ([]Show, error)
	Episodes(ctx context.Context, showID int) ([]Episode, error)
}

// Client talks to the TVMaze REST API.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	limiter    *rateLimiter
	cache      *cache.Cache
	logger     zerolog.Logger
}

// Option configures a Client during construction.
type Option func(*Client) error

// WithHTTPClient replaces the underlying HTTP client. Its transport is
// wrapped so every request still carries the catalog headers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = hc
		return nil
	}
}

// WithBaseURL points the client at another origin. Used by tests.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base url %q: %w", raw, err)
		}
		c.baseURL = u
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua != "" {
			c.userAgent = ua
		}
		return nil
	}
}

// WithRateLimit paces outgoing requests to maxRequests per window.
// A non-positive maxRequests disables pacing.
func WithRateLimit(maxRequests int, window time.Duration) Option {
	return func(c *Client) error {
		if maxRequests <= 0 || window <= 0 {
			c.limiter = nil
			return nil
		}
		c.limiter = newRateLimiter(maxRequests, window)
		return nil
	}
}

// WithCache keeps successful responses in memory for ttl.
func WithCache(ttl time.Duration) Option {
	return func(c *Client) error {
		if ttl > 0 {
			c.cache = cache.New(ttl, 2*ttl)
		}
		return nil
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// New creates a catalog client. Without options it talks to TVMaze with
// the service's published rate limit and no cache.
func New(opts ...Option) (*Client, error) {
	base, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    base,
		userAgent:  DefaultUserAgent,
		limiter:    newRateLimiter(20, 10*time.Second),
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	hc := *c.httpClient
	hc.Transport = newHeaderTransport(hc.Transport, c.userAgent)
	c.httpClient = &hc

	return c, nil
}

// SearchShows looks up shows whose title matches term. The term is sent
// verbatim, including the empty string.
func (c *Client) SearchShows(ctx context.Context, term string) ([]Show, error) {
	key := "search:" + term
	if shows, ok := cached[[]Show](c, key); ok {
		c.logger.Debug().Str("term", term).Int("count", len(shows)).Msg("search served from cache")
		return shows, nil
	}

	start := time.Now()
	var results []searchResult
	if err := c.getJSON(ctx, "search", "search/shows", url.Values{"q": {term}}, &results); err != nil {
		c.logger.Warn().Err(err).Str("term", term).Msg("search failed")
		return nil, err
	}

	shows := make([]Show, 0, len(results))
	for _, r := range results {
		shows = append(shows, r.Show.toShow())
	}

	c.store(key, shows)
	c.logger.Info().
		Str("term", term).
		Int("count", len(shows)).
		Dur("elapsed", time.Since(start)).
		Msg("search completed")
	return shows, nil
}

// Episodes lists every episode of the show in catalog order.
func (c *Client) Episodes(ctx context.Context, showID int) ([]Episode, error) {
	key := "episodes:" + strconv.Itoa(showID)
	if episodes, ok := cached[[]Episode](c, key); ok {
		c.logger.Debug().Int("show_id", showID).Int("count", len(episodes)).Msg("episodes served from cache")
		return episodes, nil
	}

	start := time.Now()
	var payload []episodePayload
	path := "shows/" + strconv.Itoa(showID) + "/episodes"
	if err := c.getJSON(ctx, "episodes", path, nil, &payload); err != nil {
		c.logger.Warn().Err(err).Int("show_id", showID).Msg("episode fetch failed")
		return nil, err
	}

	episodes := make([]Episode, 0, len(payload))
	for _, p := range payload {
		episodes = append(episodes, p.toEpisode())
	}

	c.store(key, episodes)
	c.logger.Info().
		Int("show_id", showID).
		Int("count", len(episodes)).
		Dur("elapsed", time.Since(start)).
		Msg("episodes fetched")
	return episodes, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	ref := &url.URL{Path: path}
	if query != nil {
		ref.RawQuery = query.Encode()
	}
	target := c.baseURL.ResolveReference(ref).String()

	if err := c.limiter.wait(ctx); err != nil {
		return networkError(op, target, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return networkError(op, target, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(op, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return statusError(op, target, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return decodeError(op, target, err)
	}
	return nil
}

// cached returns a copy of a cached slice so callers never share backing arrays.
func cached[S ~[]E, E any](c *Client, key string) (S, bool) {
	if c.cache == nil {
		return nil, false
	}
	v, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	s, ok := v.(S)
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

func (c *Client) store(key string, value any) {
	if c.cache == nil {
		return
	}
	switch v := value.(type) {
	case []Show:
		c.cache.Set(key, slices.Clone(v), cache.DefaultExpiration)
	case []Episode:
		c.cache.Set(key, slices.Clone(v), cache.DefaultExpiration)
	}
}
