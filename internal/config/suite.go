package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SuiteConfig holds suite-wide fixtures and tunables loaded from a YAML
// file. Expected listings live here, not in module-level test state, so a
// catalog change is a one-file edit.
type SuiteConfig struct {
	TaxRate             float64  `yaml:"tax_rate"`
	EvidenceDir         string   `yaml:"evidence_dir"`
	NavigationTimeoutMs float64  `yaml:"navigation_timeout_ms"`
	ExpectedProductsAZ  []string `yaml:"expected_products_az"`
	ExpectedPricesLoHi  []string `yaml:"expected_prices_lohi"`
}

// DefaultSuiteConfig returns the fixtures for the public demo catalog
func DefaultSuiteConfig() *SuiteConfig {
	return &SuiteConfig{
		TaxRate:             0.08,
		EvidenceDir:         "evidence",
		NavigationTimeoutMs: 10000,
		ExpectedProductsAZ: []string{
			"Sauce Labs Backpack",
			"Sauce Labs Bike Light",
			"Sauce Labs Bolt T-Shirt",
			"Sauce Labs Fleece Jacket",
			"Sauce Labs Onesie",
			"Test.allTheThings() T-Shirt (Red)",
		},
		ExpectedPricesLoHi: []string{
			"$7.99", "$9.99", "$15.99", "$15.99", "$29.99", "$49.99",
		},
	}
}

// LoadSuiteConfig loads suite configuration from path, applying defaults
// for any omitted field. A missing file yields the defaults; a malformed
// file is an error.
func LoadSuiteConfig(path string) (*SuiteConfig, error) {
	defaults := DefaultSuiteConfig()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, fmt.Errorf("failed to read suite config: %w", err)
	}

	var config SuiteConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse suite config %s: %w", path, err)
	}

	if config.TaxRate == 0 {
		config.TaxRate = defaults.TaxRate
	}
	if config.TaxRate < 0 || config.TaxRate >= 1 {
		return nil, fmt.Errorf("tax_rate must be in [0, 1), got %v", config.TaxRate)
	}
	if config.EvidenceDir == "" {
		config.EvidenceDir = defaults.EvidenceDir
	}
	if config.NavigationTimeoutMs <= 0 {
		config.NavigationTimeoutMs = defaults.NavigationTimeoutMs
	}
	if len(config.ExpectedProductsAZ) == 0 {
		config.ExpectedProductsAZ = defaults.ExpectedProductsAZ
	}
	if len(config.ExpectedPricesLoHi) == 0 {
		config.ExpectedPricesLoHi = defaults.ExpectedPricesLoHi
	}

	return &config, nil
}
