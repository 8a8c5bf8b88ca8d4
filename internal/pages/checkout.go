package pages

import (
	"context"
	"fmt"

	"github.com/storeqa/storecheck/internal/scenario"
	"github.com/storeqa/storecheck/internal/verify"
)

// CheckoutPage wraps the two checkout steps and the completion screen
type CheckoutPage struct {
	s *Session
}

// NewCheckoutPage creates a checkout page object over the session
func NewCheckoutPage(s *Session) *CheckoutPage {
	return &CheckoutPage{s: s}
}

// Ready waits for the information form of checkout step one
func (p *CheckoutPage) Ready(ctx context.Context) error {
	return p.s.Ready(ctx, scenario.ScreenCheckout)
}

// FillInformation fills the buyer information form
func (p *CheckoutPage) FillInformation(firstName, lastName, postalCode string) error {
	if err := p.s.page.Locator("#first-name").Fill(firstName); err != nil {
		return fmt.Errorf("failed to fill first name: %w", err)
	}
	if err := p.s.page.Locator("#last-name").Fill(lastName); err != nil {
		return fmt.Errorf("failed to fill last name: %w", err)
	}
	if err := p.s.page.Locator("#postal-code").Fill(postalCode); err != nil {
		return fmt.Errorf("failed to fill postal code: %w", err)
	}
	return nil
}

// Continue advances to the summary step
func (p *CheckoutPage) Continue() error {
	if err := p.s.page.Locator("#continue").Click(); err != nil {
		return fmt.Errorf("failed to continue checkout: %w", err)
	}
	return nil
}

// SummaryReady waits for the order summary of checkout step two
func (p *CheckoutPage) SummaryReady(ctx context.Context) error {
	return p.s.Ready(ctx, scenario.ScreenSummary)
}

// SummarySubtotal reads the rendered item total
func (p *CheckoutPage) SummarySubtotal(ctx context.Context) (verify.Money, error) {
	return p.summaryAmount(ctx, "subtotal")
}

// SummaryTax reads the rendered tax amount
func (p *CheckoutPage) SummaryTax(ctx context.Context) (verify.Money, error) {
	return p.summaryAmount(ctx, "tax")
}

// SummaryTotal reads the rendered grand total
func (p *CheckoutPage) SummaryTotal(ctx context.Context) (verify.Money, error) {
	return p.summaryAmount(ctx, "total")
}

func (p *CheckoutPage) summaryAmount(ctx context.Context, field string) (verify.Money, error) {
	seq, err := p.s.ExtractField(ctx, scenario.ScreenSummary, field)
	if err != nil {
		return 0, err
	}
	if len(seq) != 1 {
		return 0, fmt.Errorf("summary %s: expected a single amount, got %d", field, len(seq))
	}
	return verify.ParseMoney(seq[0])
}

// Finish places the order
func (p *CheckoutPage) Finish() error {
	if err := p.s.page.Locator("#finish").Click(); err != nil {
		return fmt.Errorf("failed to finish checkout: %w", err)
	}
	return nil
}

// CompleteHeader reads the confirmation headline on the completion screen
func (p *CheckoutPage) CompleteHeader(ctx context.Context) (string, error) {
	if err := p.s.Ready(ctx, scenario.ScreenComplete); err != nil {
		return "", err
	}
	text, err := p.s.page.Locator(".complete-header").TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read completion header: %w", err)
	}
	return text, nil
}
