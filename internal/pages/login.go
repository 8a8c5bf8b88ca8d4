package pages

import (
	"context"
	"fmt"

	"github.com/storeqa/storecheck/internal/scenario"
)

// LoginPage wraps the storefront login screen
type LoginPage struct {
	s *Session
}

// NewLoginPage creates a login page object over the session
func NewLoginPage(s *Session) *LoginPage {
	return &LoginPage{s: s}
}

// Open navigates to the login screen and waits for the form
func (p *LoginPage) Open(ctx context.Context) error {
	if err := p.s.Open(ctx, scenario.ScreenLogin); err != nil {
		return err
	}
	return p.s.Ready(ctx, scenario.ScreenLogin)
}

// Login fills the credential form and submits it
func (p *LoginPage) Login(username, password string) error {
	if err := p.s.page.Locator("#user-name").Fill(username); err != nil {
		return fmt.Errorf("failed to fill username: %w", err)
	}
	if err := p.s.page.Locator("#password").Fill(password); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}
	if err := p.s.page.Locator("#login-button").Click(); err != nil {
		return fmt.Errorf("failed to click login: %w", err)
	}
	return nil
}

// ErrorText returns the rendered login error, or "" when none is shown
func (p *LoginPage) ErrorText() (string, error) {
	errorBox := p.s.page.Locator("[data-test='error']")
	visible, err := errorBox.IsVisible()
	if err != nil {
		return "", fmt.Errorf("failed to check login error: %w", err)
	}
	if !visible {
		return "", nil
	}
	text, err := errorBox.TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read login error: %w", err)
	}
	return text, nil
}
