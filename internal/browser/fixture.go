package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/storeqa/storecheck/internal/config"
)

// Fixture owns the Playwright driver and one launched browser, shared by all
// scenarios in a run. Pages are cheap; browsers are not.
type Fixture struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// NewFixture starts Playwright and launches the configured browser
func NewFixture(cfg *config.BrowserConfig) (*Fixture, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMoMs > 0 {
		opts.SlowMo = playwright.Float(cfg.SlowMoMs)
	}

	var browserType playwright.BrowserType
	switch cfg.Name {
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		browserType = pw.Chromium
	}

	b, err := browserType.Launch(opts)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Name, err)
	}

	return &Fixture{PW: pw, Browser: b}, nil
}

// NewPage opens a fresh page with its own cookies and storage
func (f *Fixture) NewPage() (playwright.Page, error) {
	page, err := f.Browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// Close releases the browser and stops the Playwright driver
func (f *Fixture) Close() error {
	err := f.Browser.Close()
	if stopErr := f.PW.Stop(); err == nil {
		err = stopErr
	}
	return err
}

// Install downloads the browser binaries the suite launches. Run via
// `storecheck install` before the first run on a fresh machine.
func Install() error {
	return playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium", "firefox", "webkit"},
	})
}
