// Package iucn is a conservation source backed by the IUCN Red List API v4.
//
// A lookup is two calls: the taxon endpoint resolves a scientific name to its
// assessments, then the latest assessment is fetched in full.
package iucn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"botanica/internal/conservation/models"
	"botanica/internal/conservation/source"
	"botanica/pkg/platform/circuit"
)

const (
	ID = "iucn"

	maxBodyBytes         = 1 << 20
	defaultTimeout       = 5 * time.Second
	defaultRate          = 2.0
	defaultBurst         = 1
	defaultRetryInterval = 30 * time.Second
	userAgent            = "botanica/1.0"
)

// Config holds connection settings for the Red List API.
type Config struct {
	BaseURL string
	Token   string

	// Timeout bounds each HTTP call (default: 5s).
	Timeout time.Duration

	// RatePerSecond throttles outbound calls (default: 2).
	RatePerSecond float64
	Burst         int

	// Transport allows injecting a custom HTTP transport (for tests/stubs).
	Transport http.RoundTripper
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	breaker *circuit.Breaker
	logger  *slog.Logger

	retryInterval time.Duration
	now           func() time.Time

	mu        sync.Mutex
	lastRetry time.Time
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBreaker replaces the default breaker (5 failures open, 2 successes close).
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// WithRetryInterval sets how often an open circuit lets one request through.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) {
		c.retryInterval = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("iucn base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parse iucn base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = defaultRate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}

	c := &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		token:         cfg.Token,
		http:          &http.Client{Timeout: cfg.Timeout, Transport: cfg.Transport},
		limiter:       rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		breaker:       circuit.New(ID),
		logger:        slog.Default(),
		retryInterval: defaultRetryInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ID() string { return ID }

// Breaker exposes the circuit state for health reporting.
func (c *Client) Breaker() *circuit.Breaker { return c.breaker }

// Lookup resolves the latest assessment for scientificName. Names that are not
// at least binomial cannot match a species and are NotFound without a call.
func (c *Client) Lookup(ctx context.Context, scientificName string) (models.LookupResult, error) {
	name, query, ok := taxonQuery(scientificName)
	if !ok {
		return models.NotFound(), nil
	}
	if !c.allow() {
		return models.LookupResult{}, source.NewError(source.ErrorOutage, ID, "circuit open", nil)
	}

	res, err := c.lookup(ctx, name, query)
	c.record(ctx, err)
	return res, err
}

func (c *Client) lookup(ctx context.Context, name string, query url.Values) (models.LookupResult, error) {
	var taxon taxonResponse
	found, err := c.get(ctx, "/taxa/scientific_name", query, &taxon)
	if err != nil {
		return models.LookupResult{}, err
	}
	if !found {
		return models.NotFound(), nil
	}

	assessmentID, ok := taxon.latestAssessment()
	if !ok {
		return models.NotFound(), nil
	}

	var doc assessmentResponse
	found, err = c.get(ctx, "/assessment/"+strconv.FormatInt(assessmentID, 10), nil, &doc)
	if err != nil {
		return models.LookupResult{}, err
	}
	if !found {
		return models.LookupResult{}, source.NewError(source.ErrorNotFound, ID,
			fmt.Sprintf("assessment %d listed for %s but not retrievable", assessmentID, name), nil)
	}

	a, err := doc.toAssessment(name)
	if err != nil {
		return models.LookupResult{}, source.NewError(source.ErrorBadData, ID, "decode assessment", err)
	}
	return models.Found(a), nil
}

// get performs one throttled GET. found is false on a 404.
func (c *Client) get(ctx context.Context, path string, query url.Values, target any) (found bool, err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, source.NewError(source.ErrorTimeout, ID, "rate limiter wait", err)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return false, source.NewError(source.ErrorInternal, ID, "create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, transportError(err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if err := statusError(resp.StatusCode); err != nil {
		return false, err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return false, source.NewError(source.ErrorBadData, ID, "malformed response body", err)
	}
	return true, nil
}

func statusError(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return source.NewError(source.ErrorAuthentication, ID, fmt.Sprintf("status %d", status), nil)
	case status == http.StatusTooManyRequests:
		return source.NewError(source.ErrorRateLimited, ID, "rate limited by upstream", nil)
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return source.NewError(source.ErrorTimeout, ID, fmt.Sprintf("status %d", status), nil)
	case status >= 500:
		return source.NewError(source.ErrorOutage, ID, fmt.Sprintf("status %d", status), nil)
	default:
		return source.NewError(source.ErrorContractMismatch, ID, fmt.Sprintf("unexpected status %d", status), nil)
	}
}

func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return source.NewError(source.ErrorTimeout, ID, "request timed out", err)
	}
	return source.NewError(source.ErrorOutage, ID, "request failed", err)
}

// allow is true while the circuit is closed, and once per retry interval while open.
func (c *Client) allow() bool {
	if !c.breaker.IsOpen() {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if now.Sub(c.lastRetry) < c.retryInterval {
		return false
	}
	c.lastRetry = now
	return true
}

// record feeds the breaker. Only retryable failures count against the upstream;
// a caller abandoning the request is not the source's fault.
func (c *Client) record(ctx context.Context, err error) {
	if err == nil {
		if _, change := c.breaker.RecordSuccess(); change.Closed {
			c.logger.InfoContext(ctx, "iucn circuit closed")
		}
		return
	}
	if ctx.Err() != nil || !source.IsRetryable(err) {
		return
	}
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.mu.Lock()
		c.lastRetry = c.now()
		c.mu.Unlock()
		c.logger.WarnContext(ctx, "iucn circuit opened", "error", err)
	}
}

// taxonQuery splits "Genus species [infraspecific]" into API parameters.
func taxonQuery(scientificName string) (string, url.Values, bool) {
	parts := strings.Fields(scientificName)
	if len(parts) < 2 {
		return "", nil, false
	}
	q := url.Values{}
	q.Set("genus_name", parts[0])
	q.Set("species_name", parts[1])
	if len(parts) > 2 {
		q.Set("infra_name", parts[len(parts)-1])
	}
	return strings.Join(parts, " "), q, true
}
