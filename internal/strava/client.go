package strava

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/ixiliae/mcp-fitness-stack/internal/httpapi"
)

// Client wraps the Strava v3 REST API using a bearer token provisioned out of
// band by the strava-auth bootstrap.
type Client struct {
	api *httpapi.Client
}

// NewClient builds an authenticated Strava client from a static access token.
func NewClient(baseURL, accessToken string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	hc := oauth2.NewClient(context.Background(), ts)
	hc.Timeout = 30 * time.Second
	return &Client{api: httpapi.New(baseURL, nil, hc)}
}
