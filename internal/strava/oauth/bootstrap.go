// Package oauth implements the one-shot token bootstrap: a local loopback
// listener captures the authorization code redirect, then exchanges it for an
// access/refresh token pair. Run manually, out of band, to provision the
// credentials the adapters read from the environment.
package oauth

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/ixiliae/mcp-fitness-stack/internal/logging"
)

const confirmationBody = "Authorization received - you can close this window."

// Endpoint is Strava's OAuth2 endpoint pair.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://www.strava.com/oauth/authorize",
	TokenURL: "https://www.strava.com/oauth/token",
}

// NewConfig builds the oauth2 configuration for the Strava authorization-code
// flow with read access to all activities.
func NewConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"activity:read_all"},
		Endpoint:     Endpoint,
	}
}

// Bootstrap drives the interactive flow. AuthorizePrompt receives the URL the
// user must open; when nil the URL is logged instead.
type Bootstrap struct {
	Config          *oauth2.Config
	Addr            string
	Listener        net.Listener // optional pre-bound listener; Addr is ignored when set
	Log             logging.Logger
	AuthorizePrompt func(url string)
}

// Run serves exactly one redirect request on the loopback listener, verifies
// the CSRF state, then exchanges the captured code for tokens. It blocks
// until the redirect arrives or the context is cancelled.
func (b *Bootstrap) Run(ctx context.Context) (*oauth2.Token, error) {
	state := uuid.NewString()

	listener := b.Listener
	if listener == nil {
		var err error
		listener, err = net.Listen("tcp", b.Addr)
		if err != nil {
			return nil, fmt.Errorf("bind callback listener: %w", err)
		}
	}

	authURL := b.Config.AuthCodeURL(state)
	if b.AuthorizePrompt != nil {
		b.AuthorizePrompt(authURL)
	} else {
		b.Log.Info("open the authorization URL in your browser", "url", authURL)
	}

	code, err := b.waitForCallback(ctx, listener, state)
	if err != nil {
		return nil, err
	}

	token, err := b.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return token, nil
}

type callback struct {
	code string
	err  error
}

func (b *Bootstrap) waitForCallback(ctx context.Context, listener net.Listener, state string) (string, error) {
	results := make(chan callback, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- callback{err: fmt.Errorf("authorization state mismatch")}
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			results <- callback{err: fmt.Errorf("redirect carried no authorization code")}
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(confirmationBody))
		results <- callback{code: code}
	})

	srv := &http.Server{Handler: mux}
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			results <- callback{err: err}
		}
	}()
	defer srv.Close()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-results:
		return result.code, result.err
	}
}
