package config

import (
	"fmt"
	"strings"
)

// SiteConfig holds the storefront under test and the account used to log in
type SiteConfig struct {
	BaseURL  string
	Username string
	Password string
}

// Defaults point at the public demo storefront
const (
	DefaultBaseURL  = "https://www.saucedemo.com"
	DefaultUsername = "standard_user"
	DefaultPassword = "secret_sauce"
)

// LoadSiteConfig loads storefront configuration from environment variables.
// Unset variables fall back to the public demo site; a set-but-blank
// STORE_BASE_URL is rejected so a broken CI environment fails loudly.
func LoadSiteConfig(getenv func(string) string) (*SiteConfig, error) {
	config := &SiteConfig{
		BaseURL:  getenv("STORE_BASE_URL"),
		Username: getenv("STORE_USERNAME"),
		Password: getenv("STORE_PASSWORD"),
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Username == "" {
		config.Username = DefaultUsername
	}
	if config.Password == "" {
		config.Password = DefaultPassword
	}

	if !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		return nil, fmt.Errorf("STORE_BASE_URL must be an http(s) URL, got %q", config.BaseURL)
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return config, nil
}
