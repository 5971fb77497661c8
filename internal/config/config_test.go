package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()
}

func TestRequireHevyFailsFastWithHint(t *testing.T) {
	reset(t)
	err := RequireHevy()
	if err == nil {
		t.Fatal("missing API key must fail before any network call")
	}
	if !strings.Contains(err.Error(), "HEVY_API_KEY") {
		t.Fatalf("error must name the missing variable: %v", err)
	}
	if !strings.Contains(err.Error(), "hevy.com/settings") {
		t.Fatalf("error must say where to get the key: %v", err)
	}

	viper.Set(KeyHevyAPIKey, "key")
	if err := RequireHevy(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireStravaOAuthNeedsBothCredentials(t *testing.T) {
	reset(t)
	viper.Set(KeyStravaClientID, "id")
	err := RequireStravaOAuth()
	if err == nil || !strings.Contains(err.Error(), "STRAVA_CLIENT_SECRET") {
		t.Fatalf("expected the secret to be reported missing, got %v", err)
	}

	viper.Set(KeyStravaClientSecret, "secret")
	if err := RequireStravaOAuth(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireGarminNeedsBothCredentials(t *testing.T) {
	reset(t)
	err := RequireGarmin()
	if err == nil || !strings.Contains(err.Error(), "GARMIN_EMAIL") {
		t.Fatalf("expected the email to be reported missing, got %v", err)
	}

	viper.Set(KeyGarminEmail, "a@b.c")
	err = RequireGarmin()
	if err == nil || !strings.Contains(err.Error(), "GARMIN_PASSWORD") {
		t.Fatalf("expected the password to be reported missing, got %v", err)
	}
}

func TestDefaults(t *testing.T) {
	reset(t)
	if got := HevyBaseURL(); got != "https://api.hevyapp.com/v1" {
		t.Fatalf("unexpected Hevy base URL %q", got)
	}
	if got := StravaBaseURL(); got != "https://www.strava.com/api/v3" {
		t.Fatalf("unexpected Strava base URL %q", got)
	}
	if got := OAuthRedirectURL(); got != "http://localhost:8080/callback" {
		t.Fatalf("unexpected redirect URL %q", got)
	}
}
