// Package shopify is a thin client for the Shopify Admin REST API covering
// fulfillments, shipping labels, and tracking updates. The API is treated as
// an opaque collaborator: JSON in, JSON out, error on any non-2xx response.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/zerzus666/ticketforge-app-sub001/internal/logger"
)

// ErrUnexpectedStatus indicates a non-2xx response from the Admin API.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Client talks to one shop's Admin API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	maxAttempts int
	logger      *logger.Logger
}

// NewClient creates a client for the given shop domain
// (e.g. "my-store.myshopify.com") and API version.
func NewClient(shop, apiVersion, accessToken string, timeout time.Duration, maxAttempts int, log *logger.Logger) *Client {
	return &Client{
		baseURL:     fmt.Sprintf("https://%s/admin/api/%s", shop, apiVersion),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		logger:      log,
	}
}

// NewClientWithBaseURL creates a client against an explicit base URL.
// Useful for testing against a local server.
func NewClientWithBaseURL(baseURL, accessToken string, maxAttempts int, log *logger.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		maxAttempts: maxAttempts,
		logger:      log,
	}
}

// apiError carries the status and message of a failed Admin API call.
func apiError(status int, message string) error {
	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, status, message)
}

// post sends a JSON payload and decodes the JSON response into out.
// Transport failures and 5xx responses are retried with exponential backoff
// up to maxAttempts; 4xx responses are permanent and surface immediately.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	operation := func() error {
		return c.doOnce(ctx, path, body, out)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxAttempts-1)),
		ctx,
	)

	return backoff.Retry(operation, policy)
}

func (c *Client) doOnce(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("admin api request failed, will retry", "path", path, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := apiError(resp.StatusCode, errorMessage(respBody))

		// Server-side failures are worth retrying; client errors are not.
		if resp.StatusCode >= 500 {
			c.logger.Warn("admin api server error, will retry", "path", path, "status", resp.StatusCode)
			return err
		}

		return backoff.Permanent(err)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to parse response: %w", err))
	}

	return nil
}

// errorMessage pulls the message out of an Admin API error body, which is
// either {"errors": "..."} or {"errors": {...}}.
func errorMessage(body []byte) string {
	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Errors) == 0 {
		return string(body)
	}

	var msg string
	if err := json.Unmarshal(envelope.Errors, &msg); err == nil {
		return msg
	}

	return string(envelope.Errors)
}
