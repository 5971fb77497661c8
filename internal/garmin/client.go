package garmin

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/ixiliae/mcp-fitness-stack/internal/httpapi"
)

// Client wraps the Garmin Connect wellness API. Unlike the other platforms
// Garmin uses account credentials: Login authenticates the session once and
// every later call rides on the returned bearer token.
type Client struct {
	baseURL  string
	email    string
	password string
	api      *httpapi.Client
}

// NewClient builds an unauthenticated client; call Login before any data
// fetch.
func NewClient(baseURL, email, password string) *Client {
	return &Client{baseURL: baseURL, email: email, password: password}
}

// Login exchanges the account credentials for a session token.
func (c *Client) Login(ctx context.Context) error {
	anon := httpapi.New(c.baseURL, nil, nil)
	raw, err := anon.Post(ctx, "/services/auth/login", map[string]string{
		"username": c.email,
		"password": c.password,
	})
	if err != nil {
		return fmt.Errorf("garmin login: %w", err)
	}
	token := gjson.GetBytes(raw, "access_token").String()
	if token == "" {
		return fmt.Errorf("garmin login: response carried no access token")
	}
	c.api = httpapi.New(c.baseURL, map[string]string{"Authorization": "Bearer " + token}, nil)
	return nil
}

func (c *Client) session() (*httpapi.Client, error) {
	if c.api == nil {
		return nil, fmt.Errorf("garmin client is not logged in")
	}
	return c.api, nil
}
