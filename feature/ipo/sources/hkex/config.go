package hkex

// Config holds configuration for the HKEX new listings source.
type Config struct {
	// Enabled registers the source with the sync service.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.hkex.com.hk/v1"`
	// TokenURL is the OAuth2 token endpoint.
	TokenURL string `mapstructure:"token_url" default:"https://api.hkex.com.hk/oauth/token"`
	// ClientID and ClientSecret are the OAuth2 client credentials.
	ClientID     string `mapstructure:"client_id" default:""`
	ClientSecret string `mapstructure:"client_secret" default:""`
	// Scope is the OAuth2 scope requested, if any.
	Scope string `mapstructure:"scope" default:""`
	// Status filters the listings query (e.g. "all", "upcoming").
	Status string `mapstructure:"status" default:"all"`
	// MaxPages stops pagination after this many pages.
	MaxPages int `mapstructure:"max_pages" default:"20"`
	// MaxRequests and WindowSeconds bound the request rate.
	MaxRequests   int `mapstructure:"max_requests" default:"10"`
	WindowSeconds int `mapstructure:"window_seconds" default:"60"`
	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"45"`
}
