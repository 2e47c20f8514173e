package finnhub

// Config holds configuration for the Finnhub IPO calendar source.
type Config struct {
	// Enabled registers the source with the sync service.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://finnhub.io/api/v1"`
	// APIKey is the static token sent as the token query parameter.
	APIKey string `mapstructure:"api_key" default:""`
	// LookbackDays is how many days before today the calendar window starts.
	LookbackDays int `mapstructure:"lookback_days" default:"30"`
	// LookaheadDays is how many days after today the calendar window ends.
	LookaheadDays int `mapstructure:"lookahead_days" default:"90"`
	// MaxRequests and WindowSeconds bound the request rate.
	MaxRequests   int `mapstructure:"max_requests" default:"30"`
	WindowSeconds int `mapstructure:"window_seconds" default:"60"`
	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"45"`
}
