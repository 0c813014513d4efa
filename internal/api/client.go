// ABOUTME: HTTP client for the remote workout store.
// ABOUTME: One method per remote operation; failures are never swallowed.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// TokenSource supplies the current bearer token. An empty token with a nil
// error means no credential is stored.
type TokenSource interface {
	Token() (string, error)
}

// Client talks to the remote workout store. It attaches the current bearer
// credential to every authenticated call and normalizes failures into the
// package error taxonomy. No retries; the caller decides recovery.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
}

// NewClient creates a Client for the server at base.
func NewClient(base string, tokens TokenSource) *Client {
	return &Client{
		base:   base,
		http:   &http.Client{},
		tokens: tokens,
	}
}

// bearer fetches the stored token, failing with AuthError before any
// network I/O when none is available.
func (c *Client) bearer() (string, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return "", &RemoteError{Message: "read stored credential", Err: err}
	}
	if tok == "" {
		return "", &AuthError{Message: "authentication token not found"}
	}
	return tok, nil
}

// doJSON performs one request. A non-empty token is attached as a bearer
// credential. Non-2xx responses are decoded for their message field and
// classified; 2xx responses are decoded into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Message: "encode request body", Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &RemoteError{Message: "build request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Message: fmt.Sprintf("%s %s", method, path), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp.StatusCode, errorMessage(resp.Body, method, path))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RemoteError{Message: fmt.Sprintf("decode %s %s response", method, path), Err: err}
		}
	}
	return nil
}

// errorMessage extracts the server's message field from a failure body,
// falling back to a generic description.
func errorMessage(body io.Reader, method, path string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("request failed: %s %s", method, path)
}
