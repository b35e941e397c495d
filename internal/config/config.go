package config

import (
	"fmt"
	"os"
)

// Config holds the ambient settings resolved from the environment. Reddit
// credentials stay here so the collector receives them ready-made and never
// touches the environment itself.
type Config struct {
	// Mode selects the collector implementation: api, public, or mock.
	Mode string

	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	mode := os.Getenv("COLLECTOR_MODE")
	if mode == "" {
		mode = "api"
	}

	userAgent := os.Getenv("REDDIT_USER_AGENT")
	if userAgent == "" {
		userAgent = "reddit-keyword-export v1.0 (by /u/qepting91)"
	}

	cfg := &Config{
		Mode:         mode,
		ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		Username:     os.Getenv("REDDIT_USERNAME"),
		Password:     os.Getenv("REDDIT_PASSWORD"),
		UserAgent:    userAgent,
	}

	if mode == "api" && (cfg.ClientID == "" || cfg.ClientSecret == "") {
		return nil, fmt.Errorf("REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET are required for api mode")
	}
	return cfg, nil
}
