// Package backend is the HTTP client for the external flight-routes API.
// All persistence, authentication, and server-side route composition live
// behind it; the gateway only consumes.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mesat/flight-routes/internal/ratelimit"
	"github.com/mesat/flight-routes/internal/session"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	limiter *ratelimit.GroupLimiter
}

func NewClient(cfg Config, sess *session.Session, limiter *ratelimit.GroupLimiter) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		limiter: limiter,
	}
}

// do performs one request against the backend. No automatic retries:
// failures surface to the caller, who surfaces them to the user.
func (c *Client) do(ctx context.Context, group, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, group); err != nil {
			return err
		}
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// Credential is no longer accepted; drop it so the console
		// returns to the logged-out state.
		c.session.Expire()
		return newAPIError(resp)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(ctx context.Context, group, path string, query url.Values, out any) error {
	return c.do(ctx, group, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, group, path string, body, out any) error {
	return c.do(ctx, group, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, group, path string, body, out any) error {
	return c.do(ctx, group, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, group, path string) error {
	return c.do(ctx, group, http.MethodDelete, path, nil, nil, nil)
}
