// Package searchapi talks to the ChemVista /api/search endpoint.
package searchapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chemvista/internal/domain"
)

// ErrStatus is returned when the endpoint answers with a non-2xx status
var ErrStatus = errors.New("search endpoint returned an error status")

// RequestIDHeader carries a per-request UUID for log correlation
const RequestIDHeader = "X-Request-ID"

const (
	defaultBaseURL = "http://localhost:5000"
	defaultLimit   = 10
	defaultTimeout = 5 * time.Second
)

// Searcher returns suggestions for a query, in the order the endpoint
// returned them
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.Suggestion, error)
}

// Client is an HTTP Searcher
type Client struct {
	baseURL    string
	limit      int
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithLimit sets the limit query parameter
func WithLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithTimeout bounds every request through its context. A client passed
// to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for baseURL, e.g. http://localhost:5000
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		limit:      defaultLimit,
		timeout:    defaultTimeout,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search performs GET <base>/api/search?q=<query>&limit=<n>
func (c *Client) Search(ctx context.Context, query string) ([]domain.Suggestion, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(c.limit))
	endpoint := c.baseURL + "/api/search?" + params.Encode()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	requestID := uuid.New().String()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	log := c.logger.With(zap.String("request_id", requestID), zap.String("query", query))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("search request failed", zap.Error(err))
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Debug("search endpoint error", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d: %s", ErrStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]domain.Suggestion, 0, len(records))
	for _, r := range records {
		out = append(out, r.suggestion())
	}
	log.Debug("search completed", zap.Int("results", len(out)), zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// record is one element of the response array. The endpoint may send the
// id as a string or a number, or omit it.
type record struct {
	Name            string      `json:"name"`
	Formula         string      `json:"formula"`
	ID              flexibleID  `json:"id"`
	MolecularWeight json.Number `json:"molecular_weight"`
}

func (r record) suggestion() domain.Suggestion {
	id := string(r.ID)
	if id == "" {
		id = r.Formula
	}
	mw, _ := r.MolecularWeight.Float64()
	return domain.Suggestion{
		Name:            r.Name,
		Formula:         r.Formula,
		ID:              id,
		MolecularWeight: mw,
	}
}

type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexibleID(n.String())
	return nil
}
