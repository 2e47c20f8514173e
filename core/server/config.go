package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// SyncRatePerMinute caps how often the manual sync endpoints may be triggered.
	SyncRatePerMinute int `mapstructure:"sync_rate_per_minute" default:"6"`
	// Environment names the deployment (development, staging, production).
	Environment string `mapstructure:"environment" default:"development"`
}

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// IsValidEnvironment checks if the configured environment is known.
func (c Config) IsValidEnvironment() bool {
	switch c.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
		return true
	default:
		return false
	}
}

// RequiresApiKey reports whether requests must carry the API key.
// Development servers without a key configured stay open.
func (c Config) RequiresApiKey() bool {
	return c.ApiKey != "" || c.Environment == EnvProduction
}
