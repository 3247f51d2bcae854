package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bobmcallan/fabric-mcp/internal/fabric/common"
)

// APIError is returned for any non-2xx upstream status. The body is kept
// verbatim so callers can surface the provider's own error text.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream api error: status %d: %s", e.StatusCode, e.Body)
}

// FabricClient issues authenticated requests against the Equinix Fabric API.
// Configuration is immutable after construction and shared read-only across
// all tool invocations.
type FabricClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *common.Logger
}

// NewFabricClient creates a client for the given Fabric configuration.
func NewFabricClient(cfg FabricConfig, logger *common.Logger) *FabricClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FabricClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Get performs a GET request and returns the response body.
func (c *FabricClient) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, target, nil)
}

// Post performs a POST request with a JSON body and returns the response body.
func (c *FabricClient) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Patch performs a PATCH request with a JSON body and returns the response body.
func (c *FabricClient) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}

// Delete performs a DELETE request and returns the response body.
func (c *FabricClient) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// do performs one HTTP request. Any non-2xx status becomes an *APIError with
// the raw body; there are no retries and no response caching.
func (c *FabricClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Msg("Fabric API Request")

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("Fabric API Request Failed")
		return nil, fmt.Errorf("fabric request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("Fabric API Response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}
