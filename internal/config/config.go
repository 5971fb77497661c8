package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHevyBaseURL, "https://api.hevyapp.com/v1")
	viper.SetDefault(KeyStravaBaseURL, "https://www.strava.com/api/v3")
	viper.SetDefault(KeyGarminBaseURL, "https://connect.garmin.com")
	viper.SetDefault(KeyOAuthListenAddr, "localhost:8080")
	viper.SetDefault(KeyOAuthRedirectURL, "http://localhost:8080/callback")
}

func HevyAPIKey() string         { return viper.GetString(KeyHevyAPIKey) }
func HevyBaseURL() string        { return viper.GetString(KeyHevyBaseURL) }
func StravaClientID() string     { return viper.GetString(KeyStravaClientID) }
func StravaClientSecret() string { return viper.GetString(KeyStravaClientSecret) }
func StravaAccessToken() string  { return viper.GetString(KeyStravaAccessToken) }
func StravaRefreshToken() string { return viper.GetString(KeyStravaRefreshToken) }
func StravaBaseURL() string      { return viper.GetString(KeyStravaBaseURL) }
func GarminEmail() string        { return viper.GetString(KeyGarminEmail) }
func GarminPassword() string     { return viper.GetString(KeyGarminPassword) }
func GarminBaseURL() string      { return viper.GetString(KeyGarminBaseURL) }
func OAuthListenAddr() string    { return viper.GetString(KeyOAuthListenAddr) }
func OAuthRedirectURL() string   { return viper.GetString(KeyOAuthRedirectURL) }
func LogLevel() string           { return viper.GetString(KeyLogLevel) }

// RequireHevy validates the Hevy credentials before any network call is made.
func RequireHevy() error {
	if HevyAPIKey() == "" {
		return fmt.Errorf("%s is not set; get your key at https://hevy.com/settings?developer", envName(KeyHevyAPIKey))
	}
	return nil
}

// RequireStrava validates the bearer token used by the Strava adapter.
func RequireStrava() error {
	if StravaAccessToken() == "" {
		return fmt.Errorf("%s is not set; run strava-auth to provision tokens", envName(KeyStravaAccessToken))
	}
	return nil
}

// RequireStravaOAuth validates the client credentials used by the one-shot
// token bootstrap.
func RequireStravaOAuth() error {
	if StravaClientID() == "" {
		return fmt.Errorf("%s is not set", envName(KeyStravaClientID))
	}
	if StravaClientSecret() == "" {
		return fmt.Errorf("%s is not set", envName(KeyStravaClientSecret))
	}
	return nil
}

// RequireGarmin validates the Garmin Connect account credentials.
func RequireGarmin() error {
	if GarminEmail() == "" {
		return fmt.Errorf("%s is not set", envName(KeyGarminEmail))
	}
	if GarminPassword() == "" {
		return fmt.Errorf("%s is not set", envName(KeyGarminPassword))
	}
	return nil
}

// envName maps a viper key to the environment variable AutomaticEnv reads.
func envName(key string) string { return strings.ToUpper(key) }
