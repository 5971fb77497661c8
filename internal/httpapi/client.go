package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 30 * time.Second

// successMarker is returned for 2xx responses that carry no body, such as
// DELETE on most REST APIs.
var successMarker = json.RawMessage(`{"success": true}`)

// Error is the failure result of any upstream call that returned a non-2xx
// status. It carries the status code and the raw response body and is never
// retried.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream API error: status %d: %s", e.Status, e.Body)
}

// Client issues authenticated JSON requests against a versioned base path.
// Every non-2xx response becomes an *Error; bodies are UTF-8 JSON throughout.
type Client struct {
	baseURL string
	headers map[string]string
	http    *http.Client
}

// New builds a Client for the given base URL. Static headers (API keys,
// content negotiation) are attached to every request. A nil httpClient gets
// the default client with the fixed per-request timeout.
func New(baseURL string, headers map[string]string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		http:    httpClient,
	}
}

// Get performs a GET request. Query parameters may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

// Delete performs a DELETE request. An empty 2xx response body yields the
// canonical success marker instead of a JSON parse attempt.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, c.baseURL+path, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, method, c.baseURL+path, bytes.NewReader(payload))
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Body: string(data)}
	}
	if len(data) == 0 {
		return successMarker, nil
	}
	return json.RawMessage(data), nil
}
