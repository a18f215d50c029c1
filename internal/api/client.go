// Package api wraps the remote booking API: one method per resource
// operation, a single round trip each, no retries and no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"ms-booking-client/internal/auth"
	"ms-booking-client/internal/credentials"
	"ms-booking-client/internal/logger"
)

// TokenSource yields the bearer token to attach, or "" for anonymous requests.
type TokenSource func(ctx context.Context) (string, error)

// StoreTokens reads the token from durable storage on every request.
func StoreTokens(store credentials.Store) TokenSource {
	return func(ctx context.Context) (string, error) {
		return credentials.Token(ctx, store)
	}
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *logger.Logger
}

func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		logger:  log,
	}
}

// requestID reuses the ID of the gateway request that triggered the call, so
// both sides log the same value. Calls made outside a request get a fresh one.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

type response struct {
	Status int
	Body   []byte
}

func (c *Client) do(ctx context.Context, method, path string, payload any, authenticated bool) (*response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &ApiError{Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &ApiError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", requestID(ctx))

	if authenticated && c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			c.logger.Warn("API", fmt.Sprintf("Could not read credential, sending %s %s unauthenticated: %v", method, path, err))
		}
		if token != "" {
			req.Header.Set("Authorization", auth.BearerHeader(token))
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("API", fmt.Sprintf("%s %s failed: %v", method, path, err))
		return nil, &ApiError{Err: err}
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Error("API", fmt.Sprintf("Failed to close response body: %v", err))
		}
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ApiError{Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	c.logger.LogAPI(method, path, resp.Status, time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &ApiError{Status: resp.StatusCode, Message: MessageFromBody(data)}
	}
	return &response{Status: resp.StatusCode, Body: data}, nil
}

func decode[T any](resp *response, what string) (*T, error) {
	var out T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &ApiError{Status: resp.Status, Err: fmt.Errorf("failed to decode %s: %w", what, err)}
	}
	return &out, nil
}
