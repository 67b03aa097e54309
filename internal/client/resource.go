// Package client is the API-side counterpart of the server handlers: a
// thin typed wrapper over one REST resource, speaking the same
// {"data", "message", "error"} envelope the handlers emit.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// fallbackError is surfaced when the server rejects a request without a
// usable message in the body.
const fallbackError = "request failed"

// Doer lets callers swap the transport, e.g. a *http.Client in
// production or an adapter over fiber's app.Test in tests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
	Token   string // bearer credential; empty means requests go out unauthenticated
	HTTP    Doer
}

// Resource issues CRUD calls for a single REST collection such as
// /api/employees. The identifier is always server-assigned.
type Resource[T any] struct {
	cfg  Config
	path string
}

func NewResource[T any](cfg Config, path string) *Resource[T] {
	if cfg.HTTP == nil {
		cfg.HTTP = http.DefaultClient
	}
	return &Resource[T]{cfg: cfg, path: strings.TrimSuffix(path, "/")}
}

type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (r *Resource[T]) do(ctx context.Context, method, url string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.Token)
	}

	resp, err := r.cfg.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}

	if resp.StatusCode >= 400 {
		var failure envelope[json.RawMessage]
		if json.Unmarshal(raw, &failure) == nil && failure.Error != "" {
			return fmt.Errorf("%s", failure.Error) // server message passed through verbatim
		}
		return fmt.Errorf("%s (status %d)", fallbackError, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var env envelope[[]T]
	if err := r.do(ctx, http.MethodGet, r.cfg.BaseURL+r.path, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (r *Resource[T]) Get(ctx context.Context, id uint) (*T, error) {
	var env envelope[T]
	url := fmt.Sprintf("%s%s/%d", r.cfg.BaseURL, r.path, id)
	if err := r.do(ctx, http.MethodGet, url, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var env envelope[T]
	if err := r.do(ctx, http.MethodPost, r.cfg.BaseURL+r.path, payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *Resource[T]) Update(ctx context.Context, id uint, payload any) (*T, error) {
	var env envelope[T]
	url := fmt.Sprintf("%s%s/%d", r.cfg.BaseURL, r.path, id)
	if err := r.do(ctx, http.MethodPut, url, payload, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateStatus issues a status-only PATCH, e.g. PATCH /api/leaves/7/status.
func (r *Resource[T]) UpdateStatus(ctx context.Context, id uint, status string) (*T, error) {
	var env envelope[T]
	url := fmt.Sprintf("%s%s/%d/status", r.cfg.BaseURL, r.path, id)
	if err := r.do(ctx, http.MethodPatch, url, map[string]string{"status": status}, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	url := fmt.Sprintf("%s%s/%d", r.cfg.BaseURL, r.path, id)
	return r.do(ctx, http.MethodDelete, url, nil, nil)
}
