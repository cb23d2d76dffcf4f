// Package api is the typed client for the journaling backend. It owns
// request plumbing only: JSON bodies, bearer auth, error translation, and
// session teardown on 401. It never retries, caches, or dedupes; callers
// treat it as a plain data source.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jotapp/jot/internal/logger"
	"github.com/jotapp/jot/internal/session"
)

// ErrUnauthorized is returned when the backend rejects the session token.
// By the time a caller sees it the local session has already been cleared;
// the only recovery is a fresh login.
var ErrUnauthorized = errors.New("session expired, please log in again")

// Error is a non-2xx response carrying the backend-supplied message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	base    *url.URL
	http    *http.Client
	session *session.Session

	Auth     *AuthService
	Content  *ContentService
	Thoughts *ThoughtService
	Todos    *TodoService
	Habits   *HabitService
}

func New(baseURL string, sess *session.Session) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	c := &Client{
		base:    base,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: sess,
	}
	c.Auth = &AuthService{c: c}
	c.Content = &ContentService{c: c}
	c.Thoughts = &ThoughtService{c: c}
	c.Todos = &TodoService{c: c}
	c.Habits = &HabitService{c: c}
	return c, nil
}

// do issues one request. body is JSON-marshalled when non-nil; out is
// JSON-decoded into when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token expired or revoked: tear down the session so the next
		// surface the user sees is the login flow.
		if err := c.session.Clear(); err != nil {
			logger.Warn("Failed to clear session after 401", "error", err)
		}
		logger.Info("Session rejected by backend", "method", method, "path", path)
		return ErrUnauthorized
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// errorMessage extracts the backend's {"error": "..."} message, falling back
// to the HTTP status text for non-JSON bodies.
func errorMessage(data []byte, status int) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return http.StatusText(status)
}
