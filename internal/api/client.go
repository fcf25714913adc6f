// Package api is the HTTP client for the storefront backend. It is the only
// data layer of this app: every product, order and upload crosses this
// boundary. The bearer token is forwarded as-is; this client never inspects
// or refreshes it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:5000/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Error is a failure reported by the backend with an HTTP status. Transport
// failures (no response at all) are returned as plain wrapped errors instead.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// serverMessage is the backend's error body shape: {"message": "..."}.
type serverMessage struct {
	Message string `json:"message"`
}

// withHeader sets an extra header on the outgoing request.
func withHeader(key, value string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// do performs one JSON request. body is marshalled when non-nil; out is
// decoded into when non-nil. token, when set, is sent as a bearer credential.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any, opts ...func(*http.Request)) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, opt := range opts {
		opt(req)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return errorFromResponse(res)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// upload posts one file as multipart/form-data under the field name "file".
func (c *Client) upload(ctx context.Context, path, token, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return errorFromResponse(res)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("POST %s: decode response: %w", path, err)
		}
	}
	return nil
}

// errorFromResponse prefers the server-supplied message field and falls back
// to the status text.
func errorFromResponse(res *http.Response) error {
	var sm serverMessage
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err := json.Unmarshal(raw, &sm); err != nil || strings.TrimSpace(sm.Message) == "" {
		sm.Message = http.StatusText(res.StatusCode)
	}
	return &Error{Status: res.StatusCode, Message: sm.Message}
}
