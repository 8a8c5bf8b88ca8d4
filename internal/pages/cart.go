package pages

import (
	"context"
	"fmt"

	"github.com/storeqa/storecheck/internal/scenario"
	"github.com/storeqa/storecheck/internal/verify"
)

// CartPage wraps the shopping cart screen
type CartPage struct {
	s *Session
}

// NewCartPage creates a cart page object over the session
func NewCartPage(s *Session) *CartPage {
	return &CartPage{s: s}
}

// Ready waits for the cart list to render
func (p *CartPage) Ready(ctx context.Context) error {
	return p.s.Ready(ctx, scenario.ScreenCart)
}

// ItemNames reads the names of the items currently in the cart
func (p *CartPage) ItemNames(ctx context.Context) (verify.Sequence, error) {
	return p.s.ExtractField(ctx, scenario.ScreenCart, "item_name")
}

// Checkout proceeds to the checkout information step
func (p *CartPage) Checkout() error {
	if err := p.s.page.Locator("#checkout").Click(); err != nil {
		return fmt.Errorf("failed to start checkout: %w", err)
	}
	return nil
}

// ContinueShopping returns to the inventory screen
func (p *CartPage) ContinueShopping() error {
	if err := p.s.page.Locator("#continue-shopping").Click(); err != nil {
		return fmt.Errorf("failed to continue shopping: %w", err)
	}
	return nil
}
