package httputil

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/samboofficeota-hue/finance-analysis/pkg/config"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

// Client is an HTTP client wrapper with rate limiting and logging.
// 外部APIへのHTTPリクエストはすべてこのクライアントを経由する。
// 失敗時のリトライは行わない。1回の失敗は即座に呼び出し元へ返す。
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
	limiter    *rate.Limiter
}

// New creates a new HTTP client from config.
// タイムアウトとレートリミットは EDINET 設定に従う。
func New(cfg *config.Config, log *logger.Logger) *Client {
	timeout := cfg.EDINET.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.EDINET.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.EDINET.RateLimit), cfg.EDINET.RateLimit)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  log,
		limiter: limiter,
	}
}

// NewWithTimeout creates a client with a custom timeout.
func NewWithTimeout(cfg *config.Config, log *logger.Logger, timeout time.Duration) *Client {
	client := New(cfg, log)
	client.httpClient.Timeout = timeout
	return client
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	return c.Do(req)
}

// Do executes the request with rate limiting and logging
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	url := req.URL.String()
	method := req.Method

	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}
	}

	c.logger.WithFields(map[string]interface{}{
		"method": method,
		"url":    url,
	}).Debug("HTTP request started")

	resp, err := c.httpClient.Do(req)

	duration := time.Since(startTime)

	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"method":   method,
			"url":      url,
			"duration": duration,
			"error":    err.Error(),
		}).Error("HTTP request failed")
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"method":      method,
		"url":         url,
		"status_code": resp.StatusCode,
		"duration":    duration,
	}).Debug("HTTP request completed")

	return resp, nil
}
