package cse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/safeglow/backend/internal/domain"
	"golang.org/x/time/rate"
)

// ClientConfig holds settings for the custom search client
type ClientConfig struct {
	APIKey            string
	EngineID          string // the "cx" parameter
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client handles communication with the Google Custom Search JSON API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	engineID    string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new custom search client
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	// The free tier allows 100 queries per day, so keep bursts small
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      cfg.APIKey,
		engineID:    cfg.EngineID,
		baseURL:     cfg.BaseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Configured reports whether both the API key and engine ID are present
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.engineID != ""
}

// Search runs a single query against the search API. Failures are returned
// as-is; callers decide whether to retry.
func (c *Client) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	if !c.Configured() {
		return nil, domain.ErrSearchNotConfigured
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		log.Printf("[CSE] Rate limiter error: %v", err)
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Add("q", query)
	params.Add("key", c.apiKey)
	params.Add("cx", c.engineID)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	if c.debug {
		log.Printf("[CSE] Search query: %q", query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "SafeGlow/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[CSE] Request error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrSearchAPIFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[CSE] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchAPIFailure, resp.StatusCode)
	}

	var searchResp domain.SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Printf("[CSE] JSON decode error: %v", err)
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrSearchAPIFailure, err)
	}

	if c.debug {
		log.Printf("[CSE] Found %d items for query: %q", len(searchResp.Items), query)
	}

	return &searchResp, nil
}
