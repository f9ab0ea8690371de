package tiles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/map-viewer/internal/logging"
)

// Service endpoints. The legacy path is what the desktop viewer has always used.
const (
	DefaultBaseURL   = "https://static-maps.yandex.ru/1.x/"
	VersionedBaseURL = "https://static-maps.yandex.ru/v1"
)

// Request headers
const (
	UserAgent    = "map-viewer/1.0"
	AcceptHeader = "image/png,image/jpeg,image/webp,image/*;q=0.8"
)

// ErrFetchFailed is the single error kind reported by Fetch
var ErrFetchFailed = errors.New("fetch failed")

// StatusError is returned when the service answers with a non-200 status
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Unwrap makes errors.Is(err, ErrFetchFailed) hold for status errors
func (e *StatusError) Unwrap() error {
	return ErrFetchFailed
}

// Fetcher fetches static-map images
type Fetcher interface {
	Fetch(ctx context.Context, req Request) ([]byte, error)
	URL(req Request) string
}

// Client fetches images over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a client for baseURL. A zero timeout leaves the request
// bounded only by the transport.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    normalizeBaseURL(baseURL),
		httpClient: &http.Client{Timeout: timeout},
		log:        logging.Module("tiles"),
	}
}

// NewClientWithHTTP creates a client that sends requests through hc
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	c := NewClient(baseURL, 0)
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// BaseURL returns the normalized service URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the full request URL
func (c *Client) URL(req Request) string {
	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	return c.baseURL + sep + req.Query()
}

// Fetch downloads the image for req. The body is returned only for 200 OK.
func (c *Client) Fetch(ctx context.Context, req Request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(req), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetchFailed, err)
	}
	httpReq.Header.Set("User-Agent", UserAgent)
	httpReq.Header.Set("Accept", AcceptHeader)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Int("zoom", req.Zoom).
		Float64("lat", req.Latitude).
		Float64("lon", req.Longitude).
		Msg("Static map response")

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	return body, nil
}

// normalizeBaseURL strips a trailing query separator so URL can append its own
func normalizeBaseURL(base string) string {
	base = strings.TrimSpace(base)
	for strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
		base = base[:len(base)-1]
	}
	return base
}
