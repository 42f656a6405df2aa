package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the CLI configuration. Values come from flags, then DHESEND_*
// environment variables (a local .env file included), then the config file.
type Config struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
	Output    string `mapstructure:"output"`
	Verbose   bool   `mapstructure:"verbose"`
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"api-key":  "api_key",
	"base-url": "base_url",
	"output":   "output",
	"verbose":  "verbose",
}

// LoadConfig reads configuration from configPath (or ~/.dhesend/config.yaml
// when empty), the environment and the given flags.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("api_key", "")
	v.SetDefault("base_url", "")
	v.SetDefault("user_agent", "")
	v.SetDefault("output", "json")
	v.SetDefault("verbose", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".dhesend"))
		}
	}

	v.SetEnvPrefix("DHESEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch cfg.Output {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unsupported output format %q: use json or yaml", cfg.Output)
	}

	return &cfg, nil
}
