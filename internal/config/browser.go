package config

import (
	"fmt"
	"strconv"
)

// BrowserConfig holds browser launch options for the suite
type BrowserConfig struct {
	Name     string
	Headless bool
	SlowMoMs float64
}

// LoadBrowserConfig loads browser configuration from environment variables.
// HEADLESS defaults to true; set HEADLESS=false to watch a run locally.
func LoadBrowserConfig(getenv func(string) string) (*BrowserConfig, error) {
	config := &BrowserConfig{
		Name:     getenv("BROWSER"),
		Headless: getenv("HEADLESS") != "false",
	}

	if config.Name == "" {
		config.Name = "chromium"
	}
	switch config.Name {
	case "chromium", "firefox", "webkit":
	default:
		return nil, fmt.Errorf("BROWSER must be one of chromium, firefox, webkit; got %q", config.Name)
	}

	if slowmo := getenv("SLOWMO_MS"); slowmo != "" {
		ms, err := strconv.ParseFloat(slowmo, 64)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("SLOWMO_MS must be a non-negative number, got %q", slowmo)
		}
		config.SlowMoMs = ms
	}

	return config, nil
}
