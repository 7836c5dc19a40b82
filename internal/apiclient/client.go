// Package apiclient is the generic HTTP façade over the remote pizzeria API.
// A Client is constructed per scope: one per loaded page in the browser
// domain, one per incoming request in the server-rendered domain. Credentials
// therefore never leak between callers.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Config carries everything needed to build a Client. Credential is the raw
// bearer token; leave it empty for unauthenticated scopes.
type Config struct {
	BaseURL    string
	Credential string
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	http    *http.Client

	// mu guards the default Authorization slot; SetCredential and outgoing
	// requests must never observe a half-written value.
	mu         sync.Mutex
	credential string
}

// New builds a Client from an explicit config. There is no package-level
// client and no shared default-header state.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		http:       httpClient,
		credential: cfg.Credential,
	}
}

// SetCredential replaces the default Authorization credential. Only requests
// issued after the call carry the new value.
func (c *Client) SetCredential(token string) {
	c.mu.Lock()
	c.credential = token
	c.mu.Unlock()
}

// Credential returns the token currently attached to outgoing requests.
func (c *Client) Credential() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.credential
}

// Get issues a GET to path, decoding the JSON response body into out when out
// is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &RequestError{Kind: KindNetwork, Err: err}
	}
	return c.do(req, out)
}

// Post issues a POST with a JSON body, decoding the JSON response into out
// when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return &RequestError{Kind: KindBadRequest, Err: fmt.Errorf("encoding request body: %w", err)}
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return &RequestError{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// PostMultipart issues a POST with a multipart/form-data body: the given form
// fields plus one file part.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return &RequestError{Kind: KindBadRequest, Err: fmt.Errorf("writing form field %q: %w", key, err)}
		}
	}
	part, err := mw.CreateFormFile(fileField, fileName)
	if err != nil {
		return &RequestError{Kind: KindBadRequest, Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return &RequestError{Kind: KindBadRequest, Err: fmt.Errorf("copying file part: %w", err)}
	}
	if err := mw.Close(); err != nil {
		return &RequestError{Kind: KindBadRequest, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return &RequestError{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if cred := c.Credential(); cred != "" {
		req.Header.Set("Authorization", "Bearer "+cred)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RequestError{
			Kind:       classify(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(body))),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Kind: KindServer, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response body: %w", err)}
	}
	return nil
}
