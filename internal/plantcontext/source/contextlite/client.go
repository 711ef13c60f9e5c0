// Package contextlite is a context source backed by a ContextLite server.
package contextlite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"botanica/internal/plantcontext"
	"botanica/internal/plantcontext/models"
	taxonomy "botanica/internal/taxonomy/models"
)

const (
	ID = "contextlite"

	maxBodyBytes   = 1 << 20
	defaultTimeout = 10 * time.Second
	workspaceHdr   = "X-Workspace-ID"
)

type Config struct {
	BaseURL   string
	Token     string
	Workspace string

	// Timeout bounds each HTTP call (default: 10s).
	Timeout time.Duration

	// Transport allows injecting a custom HTTP transport (for tests/stubs).
	Transport http.RoundTripper
}

// Client is safe for concurrent use.
type Client struct {
	baseURL   string
	token     string
	workspace string
	http      *http.Client
	logger    *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("contextlite base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parse contextlite base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	c := &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		token:     cfg.Token,
		workspace: cfg.Workspace,
		http:      &http.Client{Timeout: cfg.Timeout, Transport: cfg.Transport},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ID() string { return ID }

type plantContextRequest struct {
	models.Query
	WorkspaceID string `json:"workspace_id,omitempty"`
	SpeciesData string `json:"species_data,omitempty"`
}

type searchResponse struct {
	Context string `json:"context"`
}

type documentRequest struct {
	ID          string            `json:"id"`
	WorkspaceID string            `json:"workspace_id,omitempty"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Recommend posts the query and the assembled species context.
func (c *Client) Recommend(ctx context.Context, q models.Query, snap taxonomy.SpeciesSnapshot) (*models.Response, error) {
	body := plantContextRequest{Query: q, WorkspaceID: c.workspace}
	if q.IncludeSpeciesData {
		body.SpeciesData = plantcontext.AssembleContext(snap)
	}

	var resp models.Response
	if err := c.do(ctx, http.MethodPost, "/api/v1/context/plant", nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.PlantID.IsNil() {
		resp.PlantID = q.PlantID
	}
	if resp.Query == "" {
		resp.Query = q.Query
	}
	return &resp, nil
}

func (c *Client) Search(ctx context.Context, query string) (string, error) {
	params := url.Values{"q": {query}}
	if c.workspace != "" {
		params.Set("workspace", c.workspace)
	}
	var resp searchResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/search", params, nil, &resp); err != nil {
		return "", err
	}
	return resp.Context, nil
}

// Index uploads the species context as one document keyed by species ID.
func (c *Client) Index(ctx context.Context, snap taxonomy.SpeciesSnapshot) error {
	doc := documentRequest{
		ID:          snap.Species.ID.String(),
		WorkspaceID: c.workspace,
		Title:       snap.Species.ScientificName(),
		Content:     plantcontext.AssembleContext(snap),
		Metadata: map[string]string{
			"family":  snap.Species.FamilyName,
			"records": fmt.Sprint(len(snap.Records)),
		},
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/documents", nil, doc, nil); err != nil {
		return err
	}
	c.logger.DebugContext(ctx, "indexed species document",
		"species_id", doc.ID,
		"records", len(snap.Records),
	)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.workspace != "" {
		req.Header.Set(workspaceHdr, c.workspace)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("contextlite %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// StatusError reports a non-2xx answer from the server.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("contextlite %s: status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("contextlite %s: status %d: %s", e.Path, e.StatusCode, e.Body)
}
