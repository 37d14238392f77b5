package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init binds configuration sources. Every key can be set from the
// environment as MORTGAGE_<KEY>; the API key also falls back to
// MORTGAGE_RATES_API_KEY.
func Init(root *cobra.Command) {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	if root != nil {
		flags := root.PersistentFlags()
		_ = viper.BindPFlags(flags)
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	_ = viper.BindEnv(KeyAPIKey, EnvAPIKey, EnvAPIKeyFallback)
	setDefaults()
}

// LoadEnvFile loads the dotenv file named by env_file. A missing file is not
// an error; variables already set in the environment win.
func LoadEnvFile() {
	if path := EnvFile(); path != "" {
		_ = godotenv.Load(path)
	}
}

// flagKeys maps config keys to the persistent flag names that override them.
var flagKeys = map[string]string{
	KeyAPIBaseURL:  "api-url",
	KeyHTTPTimeout: "http-timeout",
	KeyLogLevel:    "log-level",
	KeyEnvFile:     "env-file",
}

func setDefaults() {
	viper.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	viper.SetDefault(KeyHTTPTimeout, "0s")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyEnvFile, ".env")
}

func APIKey() string      { return strings.TrimSpace(viper.GetString(KeyAPIKey)) }
func APIBaseURL() string  { return viper.GetString(KeyAPIBaseURL) }
func HTTPTimeout() string { return viper.GetString(KeyHTTPTimeout) }
func LogLevel() string    { return viper.GetString(KeyLogLevel) }
func EnvFile() string     { return viper.GetString(KeyEnvFile) }
