package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/travel-time-gateway/internal/domain"
)

// DefaultIntracityURL is the path-search endpoint used by the intracity variant
// when ODSAY_API_URL is not set.
const DefaultIntracityURL = "https://api.odsay.com/v1/api/searchPubTransPathT"

type Config struct {
	Server ServerConfig
	ODsay  ODsayConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type ODsayConfig struct {
	APIKey         string
	BaseURL        string
	Scope          domain.SearchScope
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds the configuration from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEARCH_SCOPE", "intercity")
	v.SetDefault("ODSAY_REQUEST_TIMEOUT", 10)

	scope, err := domain.ParseSearchScope(v.GetString("SEARCH_SCOPE"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_SCOPE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		ODsay: ODsayConfig{
			APIKey:         strings.TrimSpace(v.GetString("ODSAY_API_KEY")),
			BaseURL:        strings.TrimSpace(v.GetString("ODSAY_API_URL")),
			Scope:          scope,
			RequestTimeout: time.Duration(v.GetInt("ODSAY_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.ODsay.APIKey == "" {
		return nil, errors.New("ODSAY_API_KEY is not set")
	}

	// Only the intracity variant has a built-in endpoint
	if cfg.ODsay.BaseURL == "" {
		if scope != domain.SearchScopeIntracity {
			return nil, errors.New("ODSAY_API_URL is not set")
		}
		cfg.ODsay.BaseURL = DefaultIntracityURL
	}

	if cfg.ODsay.RequestTimeout <= 0 {
		cfg.ODsay.RequestTimeout = 10 * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
