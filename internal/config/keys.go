package config

const (
	KeyHevyAPIKey         = "hevy_api_key"
	KeyHevyBaseURL        = "hevy_base_url"
	KeyStravaClientID     = "strava_client_id"
	KeyStravaClientSecret = "strava_client_secret"
	KeyStravaAccessToken  = "strava_access_token"
	KeyStravaRefreshToken = "strava_refresh_token"
	KeyStravaBaseURL      = "strava_base_url"
	KeyGarminEmail        = "garmin_email"
	KeyGarminPassword     = "garmin_password"
	KeyGarminBaseURL      = "garmin_base_url"
	KeyOAuthListenAddr    = "oauth_listen_addr"
	KeyOAuthRedirectURL   = "oauth_redirect_url"
	KeyLogLevel           = "log_level"
)
