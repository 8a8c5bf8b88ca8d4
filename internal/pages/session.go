package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/storeqa/storecheck/internal/config"
	"github.com/storeqa/storecheck/internal/scenario"
	"github.com/storeqa/storecheck/internal/verify"
)

// Session wraps one browser page plus the site configuration and is shared
// by all page objects of a scenario. It implements the scenario boundary
// interfaces (Navigator, DataExtractor, ActionDispatcher) so the same
// screens can be driven declaratively or through the typed page objects.
type Session struct {
	page      playwright.Page
	site      *config.SiteConfig
	timeoutMs float64
}

// NewSession creates a session over an already-open page
func NewSession(page playwright.Page, site *config.SiteConfig, timeoutMs float64) *Session {
	if timeoutMs <= 0 {
		timeoutMs = 10000
	}
	return &Session{page: page, site: site, timeoutMs: timeoutMs}
}

// Page exposes the underlying playwright page for screenshot capture and
// raw script evaluation
func (s *Session) Page() playwright.Page {
	return s.page
}

// screenPaths maps logical screens to storefront routes
var screenPaths = map[scenario.Screen]string{
	scenario.ScreenLogin:     "/",
	scenario.ScreenInventory: "/inventory.html",
	scenario.ScreenCart:      "/cart.html",
	scenario.ScreenCheckout:  "/checkout-step-one.html",
	scenario.ScreenSummary:   "/checkout-step-two.html",
	scenario.ScreenComplete:  "/checkout-complete.html",
}

// readySelectors are the elements whose visibility marks a screen stable
var readySelectors = map[scenario.Screen]string{
	scenario.ScreenLogin:     "#login-button",
	scenario.ScreenInventory: ".inventory_list",
	scenario.ScreenCart:      ".cart_list",
	scenario.ScreenCheckout:  "#first-name",
	scenario.ScreenSummary:   ".summary_info",
	scenario.ScreenComplete:  ".complete-header",
}

// fieldSelectors map logical field names to the locators that render them
var fieldSelectors = map[string]string{
	"item_name":  ".inventory_item_name",
	"item_price": ".inventory_item_price",
	"subtotal":   ".summary_subtotal_label",
	"tax":        ".summary_tax_label",
	"total":      ".summary_total_label",
	"error":      "[data-test='error']",
}

// moneyFields render as labelled amounts ("Item total: $29.99"); extraction
// keeps only the amount so downstream parsing sees a clean currency string
var moneyFields = map[string]bool{
	"subtotal": true,
	"tax":      true,
	"total":    true,
}

// Open navigates to the named screen
func (s *Session) Open(ctx context.Context, screen scenario.Screen) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, ok := screenPaths[screen]
	if !ok {
		return fmt.Errorf("unknown screen %q", screen)
	}
	if _, err := s.page.Goto(s.site.BaseURL+path, playwright.PageGotoOptions{
		Timeout: playwright.Float(s.timeoutMs),
	}); err != nil {
		return fmt.Errorf("failed to open %s: %w", screen, err)
	}
	return nil
}

// Ready blocks until the screen's marker element is visible
func (s *Session) Ready(ctx context.Context, screen scenario.Screen) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sel, ok := readySelectors[screen]
	if !ok {
		return fmt.Errorf("unknown screen %q", screen)
	}
	if err := s.page.Locator(sel).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(s.timeoutMs),
	}); err != nil {
		return fmt.Errorf("screen %s did not become ready: %w", screen, err)
	}
	return nil
}

// ExtractField reads all currently rendered values for a logical field
func (s *Session) ExtractField(ctx context.Context, screen scenario.Screen, field string) (verify.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sel, ok := fieldSelectors[field]
	if !ok {
		return nil, fmt.Errorf("unknown field %q", field)
	}
	texts, err := s.page.Locator(sel).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s on %s: %w", field, screen, err)
	}

	seq := make(verify.Sequence, len(texts))
	for i, text := range texts {
		if moneyFields[field] {
			text = currencyPart(text)
		}
		seq[i] = text
	}
	return seq, nil
}

// TriggerAction dispatches a named UI mutation on a screen
func (s *Session) TriggerAction(ctx context.Context, screen scenario.Screen, action string, params map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch {
	case screen == scenario.ScreenLogin && action == "login":
		return NewLoginPage(s).Login(params["username"], params["password"])
	case screen == scenario.ScreenInventory && action == "sort":
		return NewInventoryPage(s).SortBy(params["option"])
	case screen == scenario.ScreenInventory && action == "add_to_cart":
		return NewInventoryPage(s).AddToCart(params["item"])
	case screen == scenario.ScreenInventory && action == "remove_from_cart":
		return NewInventoryPage(s).RemoveFromCart(params["item"])
	case screen == scenario.ScreenInventory && action == "open_cart":
		return NewInventoryPage(s).OpenCart()
	case screen == scenario.ScreenCart && action == "checkout":
		return NewCartPage(s).Checkout()
	case screen == scenario.ScreenCheckout && action == "fill_information":
		return NewCheckoutPage(s).FillInformation(params["first_name"], params["last_name"], params["postal_code"])
	case screen == scenario.ScreenCheckout && action == "continue":
		return NewCheckoutPage(s).Continue()
	case screen == scenario.ScreenSummary && action == "finish":
		return NewCheckoutPage(s).Finish()
	default:
		return fmt.Errorf("unknown action %q on screen %q", action, screen)
	}
}

// Screenshot captures the full page as PNG bytes
func (s *Session) Screenshot() ([]byte, error) {
	data, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return data, nil
}

// currencyPart strips a label prefix such as "Item total: " so only the
// amount remains
func currencyPart(text string) string {
	if i := strings.LastIndex(text, "$"); i >= 0 {
		return text[i:]
	}
	return strings.TrimSpace(text)
}

// itemSlug derives the storefront's data-test suffix for a product name:
// lowercased with spaces turned into dashes, punctuation kept as is
func itemSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
