// Package api implements typed resource clients for the listing platform's
// admin REST API. One file per resource; all requests go through a shared
// Client that owns the base URL, the session cookie jar and the lang header.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uyhome/adminctl/internal/logging"
)

const basePath = "/api/website/v1"

// Client performs HTTP calls against the admin API. It is safe for
// concurrent use. Session credentials live in the underlying cookie jar,
// so a successful Login authenticates all subsequent calls.
type Client struct {
	baseURL string
	http    *http.Client
	locale  func() string
	log     logging.Logger
}

// Options configures a Client.
//
// Locale supplies the value of the per-request "lang" header; it is read on
// every call, so a live locale store can be plugged in directly. When nil,
// "ru" is sent.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Locale  func() string
	Logger  logging.Logger
}

func New(opts Options) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	locale := opts.Locale
	if locale == nil {
		locale = func() string { return "ru" }
	}

	log := opts.Logger
	if log == nil {
		log = logging.NewTerminalLogger(io.Discard, 0)
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: opts.Timeout},
		locale:  locale,
		log:     log,
	}, nil
}

// do executes one request and maps the outcome onto the package's error
// taxonomy: transport failure, non-2xx status, or a decoded envelope whose
// data field is unmarshalled into out (when out is non-nil).
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	u := c.baseURL + basePath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}

	req.Header.Set("lang", c.locale())
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.Debug(ctx, "sending request", "method", method, "url", u)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "op", op, "error", err)
		return &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := envelopeMessage(data)
		c.log.Warn(ctx, "non-success response", "op", op, "status_code", resp.StatusCode, "message", msg)
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("decoding envelope: %w", err)}
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("decoding payload: %w", err)}
	}
	return nil
}

// doJSON marshals payload (when non-nil) and executes do with a JSON body.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, payload any, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return &RequestError{Op: op, Err: err}
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, op, method, path, query, contentType, body, out)
}

// Generic CRUD helpers shared by the per-resource files. path is the
// resource root without the API prefix, e.g. "/cities".

func list[T any](ctx context.Context, c *Client, path string, query url.Values, op string) (*Page[T], error) {
	var page Page[T]
	if err := c.do(ctx, op, http.MethodGet, path+"/", query, "", nil, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []T{}
	}
	return &page, nil
}

func get[T any](ctx context.Context, c *Client, path string, id int64, op string) (T, error) {
	var v T
	err := c.do(ctx, op, http.MethodGet, fmt.Sprintf("%s/%d/", path, id), nil, "", nil, &v)
	return v, err
}

func create[T any](ctx context.Context, c *Client, path string, payload any, op string) (T, error) {
	var v T
	err := c.doJSON(ctx, op, http.MethodPost, path+"/", nil, payload, &v)
	return v, err
}

func update[T any](ctx context.Context, c *Client, path string, id int64, payload any, op string) (T, error) {
	var v T
	err := c.doJSON(ctx, op, http.MethodPut, fmt.Sprintf("%s/%d/", path, id), nil, payload, &v)
	return v, err
}

func patch[T any](ctx context.Context, c *Client, path string, id int64, payload any, op string) (T, error) {
	var v T
	err := c.doJSON(ctx, op, http.MethodPatch, fmt.Sprintf("%s/%d/", path, id), nil, payload, &v)
	return v, err
}

func del(ctx context.Context, c *Client, path string, id int64, op string) error {
	return c.do(ctx, op, http.MethodDelete, fmt.Sprintf("%s/%d/", path, id), nil, "", nil, nil)
}
