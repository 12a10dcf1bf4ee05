// Package config loads credentials and defaults for the Harvest CLI.
// Credentials come from the environment (optionally seeded from a .env
// file); non-secret defaults live in a TOML file under the user's config
// directory.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// ErrMissingToken indicates no access token is configured for the
// requested VK token mode.
var ErrMissingToken = errors.New("config: missing access token")

// Config holds the environment-sourced credentials for the chat and
// social-API capabilities.
type Config struct {
	// Telegram API credentials.
	TelAPIID     int    `env:"TEL_API_ID"`
	TelAPIHash   string `env:"TEL_API_HASH"`
	TelAccNumber string `env:"TEL_ACC_NUMBER"`

	// VK access tokens. User tokens read personal dialogs and
	// conversations; group tokens read a community's dialogs.
	VKUserToken  string `env:"VK_USER_TOKEN"`
	VKGroupToken string `env:"VK_GROUP_TOKEN"`
}

// Load reads the environment into a Config. When envFile is non-empty it
// is loaded first; a missing default .env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// VKToken returns the access token for the given mode ("user" or "group"),
// or ErrMissingToken naming the variable to set.
func (c *Config) VKToken(mode string) (string, error) {
	switch mode {
	case "user":
		if c.VKUserToken == "" {
			return "", fmt.Errorf("%w: set VK_USER_TOKEN", ErrMissingToken)
		}
		return c.VKUserToken, nil
	case "group":
		if c.VKGroupToken == "" {
			return "", fmt.Errorf("%w: set VK_GROUP_TOKEN", ErrMissingToken)
		}
		return c.VKGroupToken, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrMissingToken, mode)
	}
}
