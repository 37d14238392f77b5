package config

const (
	KeyAPIKey      = "api_key"
	KeyAPIBaseURL  = "api_base_url"
	KeyHTTPTimeout = "http_timeout"
	KeyLogLevel    = "log_level"
	KeyEnvFile     = "env_file"
)

const EnvPrefix = "MORTGAGE"

// Environment variables consulted for the API key, in order of precedence.
const (
	EnvAPIKey         = "MORTGAGE_API_KEY"
	EnvAPIKeyFallback = "MORTGAGE_RATES_API_KEY"
)

// DefaultAPIBaseURL is the origin every tool call is sent to unless overridden.
const DefaultAPIBaseURL = "https://api.mortgageratesapi.com"
