package edinet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/samboofficeota-hue/finance-analysis/pkg/config"
	"github.com/samboofficeota-hue/finance-analysis/pkg/httputil"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

// Document is a decoded upstream JSON document.
type Document map[string]any

// Client handles communication with the EDINET DB API.
// EDINET DB APIの呼び出しはこのクライアントに集約する。
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	apiKey     string
}

// NewClient creates a new EDINET DB API client.
// APIキーは起動時に設定から注入する。get内で環境変数は参照しない。
func NewClient(cfg config.EDINETConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// get issues one authenticated GET request and decodes the JSON document.
// リトライは行わない。失敗は型付きエラーにして即座に返す。
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (Document, error) {
	fullURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w (status %d)", ErrAuthRejected, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("API request failed: unexpected status %d", resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return doc, nil
}
