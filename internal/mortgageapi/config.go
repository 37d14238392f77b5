package mortgageapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/roivaz/mortgage-mcp/internal/config"
	"github.com/roivaz/mortgage-mcp/internal/logging"
)

// ErrMissingAPIKey is returned by LoadConfig when neither API key variable is set.
var ErrMissingAPIKey = errors.New(config.EnvAPIKey + " (or " + config.EnvAPIKeyFallback + ") must be set")

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration // zero leaves the HTTP client without a deadline
	HTTPClient *http.Client
	Logger     logging.Logger
}

func LoadConfig() (Config, error) {
	cfg := Config{
		BaseURL: strings.TrimRight(strings.TrimSpace(config.APIBaseURL()), "/"),
		APIKey:  config.APIKey(),
	}
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return Config{}, errors.New("api base url must not be empty")
	}

	timeout, err := parseDuration(config.HTTPTimeout(), 0)
	if err != nil {
		return Config{}, fmt.Errorf("invalid http_timeout: %w", err)
	}
	cfg.Timeout = timeout

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", d)
	}
	return d, nil
}
