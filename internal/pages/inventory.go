package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/storeqa/storecheck/internal/scenario"
	"github.com/storeqa/storecheck/internal/verify"
)

// Sort dropdown option values offered by the storefront
const (
	SortNameAZ     = "az"
	SortNameZA     = "za"
	SortPriceLowHi = "lohi"
	SortPriceHiLow = "hilo"
)

// InventoryPage wraps the product listing screen
type InventoryPage struct {
	s *Session
}

// NewInventoryPage creates an inventory page object over the session
func NewInventoryPage(s *Session) *InventoryPage {
	return &InventoryPage{s: s}
}

// Ready waits for the product list to render
func (p *InventoryPage) Ready(ctx context.Context) error {
	return p.s.Ready(ctx, scenario.ScreenInventory)
}

// SortBy selects a sort option by its dropdown value
func (p *InventoryPage) SortBy(option string) error {
	if _, err := p.s.page.Locator(".product_sort_container").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{option},
	}); err != nil {
		return fmt.Errorf("failed to select sort option %q: %w", option, err)
	}
	return nil
}

// ItemNames reads the rendered product names in display order
func (p *InventoryPage) ItemNames(ctx context.Context) (verify.Sequence, error) {
	return p.s.ExtractField(ctx, scenario.ScreenInventory, "item_name")
}

// ItemPrices reads the rendered product prices in display order
func (p *InventoryPage) ItemPrices(ctx context.Context) (verify.Sequence, error) {
	return p.s.ExtractField(ctx, scenario.ScreenInventory, "item_price")
}

// AddToCart clicks the add-to-cart control for the named product
func (p *InventoryPage) AddToCart(name string) error {
	sel := fmt.Sprintf("[data-test='add-to-cart-%s']", itemSlug(name))
	if err := p.s.page.Locator(sel).Click(); err != nil {
		return fmt.Errorf("failed to add %q to cart: %w", name, err)
	}
	return nil
}

// RemoveFromCart clicks the remove control for the named product
func (p *InventoryPage) RemoveFromCart(name string) error {
	sel := fmt.Sprintf("[data-test='remove-%s']", itemSlug(name))
	if err := p.s.page.Locator(sel).Click(); err != nil {
		return fmt.Errorf("failed to remove %q from cart: %w", name, err)
	}
	return nil
}

// CartBadgeCount returns the cart badge number, 0 when the badge is absent
func (p *InventoryPage) CartBadgeCount() (int, error) {
	badge := p.s.page.Locator(".shopping_cart_badge")
	count, err := badge.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to locate cart badge: %w", err)
	}
	if count == 0 {
		return 0, nil
	}
	text, err := badge.TextContent()
	if err != nil {
		return 0, fmt.Errorf("failed to read cart badge: %w", err)
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("cart badge is not a number: %q", text)
	}
	return n, nil
}

// OpenCart clicks through to the cart screen
func (p *InventoryPage) OpenCart() error {
	if err := p.s.page.Locator(".shopping_cart_link").Click(); err != nil {
		return fmt.Errorf("failed to open cart: %w", err)
	}
	return nil
}
