package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public DMOJ instance
const DefaultBaseURL = "https://dmoj.ca"

const defaultTimeout = 30 * time.Second

// Client talks to a DMOJ-compatible judge. The token is sent as a Bearer
// credential on every request when set.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

func New(baseURL, token string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
}

// getAPI fetches an API v2 endpoint and decodes its envelope into out.
func (c *Client) getAPI(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	logger.Debug("fetching", zap.String("url", endpoint))
	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	logger.Debug("fetched",
		zap.String("url", endpoint),
		zap.Int("status", res.StatusCode),
		zap.Duration("took", time.Since(start)))

	// the API reports its own errors inside the envelope, often with a non-200 status
	if err := json.Unmarshal(body, out); err != nil {
		if res.StatusCode != http.StatusOK {
			return &StatusError{Code: res.StatusCode, Body: string(body)}
		}
		return fmt.Errorf("converting API response to json failed: %w", err)
	}
	return nil
}
