package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ixiliae/mcp-fitness-stack/internal/config"
	"github.com/ixiliae/mcp-fitness-stack/internal/logging"
	"github.com/ixiliae/mcp-fitness-stack/internal/strava/oauth"
)

func main() {
	root := &cobra.Command{
		Use:   "strava-auth",
		Short: "One-shot Strava OAuth token bootstrap",
		Long: `Provision long-lived Strava credentials for the strava-mcp adapter.

Opens the Strava authorization URL, waits for the redirect on a local
loopback listener, exchanges the authorization code for tokens, and prints
them. Save the refresh token; export the access token as
STRAVA_ACCESS_TOKEN.`,
		RunE: run,
	}

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.RequireStravaOAuth(); err != nil {
		return err
	}
	logger := logging.New(logging.DefaultLogger(config.LogLevel())).WithName("strava-auth")

	bootstrap := &oauth.Bootstrap{
		Config: oauth.NewConfig(config.StravaClientID(), config.StravaClientSecret(), config.OAuthRedirectURL()),
		Addr:   config.OAuthListenAddr(),
		Log:    logger,
		AuthorizePrompt: func(url string) {
			fmt.Println("Open this URL in your browser to authorize:")
			fmt.Println(url)
		},
	}

	token, err := bootstrap.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println("Access token :", token.AccessToken)
	fmt.Println("Refresh token:", token.RefreshToken)
	return nil
}
