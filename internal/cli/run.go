package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storeqa/storecheck/internal/browser"
	"github.com/storeqa/storecheck/internal/config"
	"github.com/storeqa/storecheck/internal/pages"
	"github.com/storeqa/storecheck/internal/report"
	"github.com/storeqa/storecheck/internal/scenario"
	"github.com/storeqa/storecheck/internal/verify"
)

// RunDependencies holds all dependencies needed for a verification run
type RunDependencies struct {
	Site   *config.SiteConfig
	Brow   *config.BrowserConfig
	Suite  *config.SuiteConfig
	Logger zerolog.Logger
}

// RunSmoke logs into the storefront and verifies the default product
// listing. It is the quick health check behind `storecheck smoke`.
func RunSmoke(ctx context.Context, deps RunDependencies) error {
	session, sink, cleanup, err := openSession(deps)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := login(ctx, session, deps.Site); err != nil {
		return err
	}

	runner := scenario.NewRunner(session, session, session, sink, deps.Logger)
	check := scenario.SortCheck{
		Name:     "smoke default listing a to z",
		Screen:   scenario.ScreenInventory,
		Field:    "item_name",
		Spec:     verify.Spec{Kind: verify.KindLexicographic, Direction: verify.Ascending},
		Expected: verify.Sequence(deps.Suite.ExpectedProductsAZ),
	}
	if err := runner.RunSortCheck(ctx, check); err != nil {
		return err
	}

	deps.Logger.Info().Str("evidence_dir", sink.Dir()).Msg("smoke check passed")
	return nil
}

// RunScenarios executes every declarative sort check plus the checkout
// totals check against a freshly populated cart.
func RunScenarios(ctx context.Context, deps RunDependencies) error {
	session, sink, cleanup, err := openSession(deps)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := login(ctx, session, deps.Site); err != nil {
		return err
	}

	runner := scenario.NewRunner(session, session, session, sink, deps.Logger)

	var failed int
	for _, check := range SortChecks(deps.Suite) {
		if err := runner.RunSortCheck(ctx, check); err != nil {
			deps.Logger.Error().Err(err).Str("check", check.Name).Msg("sort check failed")
			failed++
			continue
		}
		deps.Logger.Info().Str("check", check.Name).Msg("sort check passed")
	}

	if err := runTotals(ctx, session, runner, deps); err != nil {
		deps.Logger.Error().Err(err).Msg("totals check failed")
		failed++
	} else {
		deps.Logger.Info().Msg("totals check passed")
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed; evidence in %s", failed, sink.Dir())
	}
	deps.Logger.Info().Str("evidence_dir", sink.Dir()).Msg("all checks passed")
	return nil
}

// SortChecks builds the four sort-mode verifications from the suite fixtures
func SortChecks(suite *config.SuiteConfig) []scenario.SortCheck {
	namesAZ := verify.Sequence(suite.ExpectedProductsAZ)
	pricesLoHi := verify.Sequence(suite.ExpectedPricesLoHi)

	return []scenario.SortCheck{
		{
			Name:     "name a to z",
			Screen:   scenario.ScreenInventory,
			Action:   "sort",
			Params:   map[string]string{"option": pages.SortNameAZ},
			Field:    "item_name",
			Spec:     verify.Spec{Kind: verify.KindLexicographic, Direction: verify.Ascending},
			Expected: namesAZ,
		},
		{
			Name:     "name z to a",
			Screen:   scenario.ScreenInventory,
			Action:   "sort",
			Params:   map[string]string{"option": pages.SortNameZA},
			Field:    "item_name",
			Spec:     verify.Spec{Kind: verify.KindLexicographic, Direction: verify.Descending},
			Expected: Reversed(namesAZ),
		},
		{
			Name:     "price low to high",
			Screen:   scenario.ScreenInventory,
			Action:   "sort",
			Params:   map[string]string{"option": pages.SortPriceLowHi},
			Field:    "item_price",
			Spec:     verify.Spec{Kind: verify.KindNumeric, Direction: verify.Ascending},
			Expected: pricesLoHi,
		},
		{
			Name:   "price high to low",
			Screen: scenario.ScreenInventory,
			Action: "sort",
			Params: map[string]string{"option": pages.SortPriceHiLow},
			Field:  "item_price",
			Spec:   verify.Spec{Kind: verify.KindNumeric, Direction: verify.Descending},
			// duplicate prices make the reversed list ambiguous per item,
			// but the price column itself reverses exactly
			Expected: Reversed(pricesLoHi),
		},
	}
}

// Reversed returns a reversed copy of seq
func Reversed(seq verify.Sequence) verify.Sequence {
	out := make(verify.Sequence, len(seq))
	for i, v := range seq {
		out[len(seq)-1-i] = v
	}
	return out
}

func openSession(deps RunDependencies) (*pages.Session, *report.EvidenceSink, func(), error) {
	fixture, err := browser.NewFixture(deps.Brow)
	if err != nil {
		return nil, nil, nil, err
	}

	page, err := fixture.NewPage()
	if err != nil {
		fixture.Close()
		return nil, nil, nil, err
	}

	sink, err := report.NewEvidenceSink(deps.Suite.EvidenceDir, deps.Logger)
	if err != nil {
		fixture.Close()
		return nil, nil, nil, err
	}

	session := pages.NewSession(page, deps.Site, deps.Suite.NavigationTimeoutMs)
	cleanup := func() {
		if err := fixture.Close(); err != nil {
			deps.Logger.Warn().Err(err).Msg("failed to close browser")
		}
	}
	return session, sink, cleanup, nil
}

func login(ctx context.Context, session *pages.Session, site *config.SiteConfig) error {
	loginPage := pages.NewLoginPage(session)
	if err := loginPage.Open(ctx); err != nil {
		return err
	}
	if err := loginPage.Login(site.Username, site.Password); err != nil {
		return err
	}
	return session.Ready(ctx, scenario.ScreenInventory)
}

// runTotals populates a one-item cart and validates the checkout summary
func runTotals(ctx context.Context, session *pages.Session, runner *scenario.Runner, deps RunDependencies) error {
	if len(deps.Suite.ExpectedProductsAZ) == 0 {
		return fmt.Errorf("no products configured for totals check")
	}
	item := deps.Suite.ExpectedProductsAZ[0]

	inventory := pages.NewInventoryPage(session)
	if err := inventory.Ready(ctx); err != nil {
		return err
	}
	if err := inventory.AddToCart(item); err != nil {
		return err
	}
	if err := inventory.OpenCart(); err != nil {
		return err
	}

	cart := pages.NewCartPage(session)
	if err := cart.Ready(ctx); err != nil {
		return err
	}
	if err := cart.Checkout(); err != nil {
		return err
	}

	checkout := pages.NewCheckoutPage(session)
	if err := checkout.Ready(ctx); err != nil {
		return err
	}
	if err := checkout.FillInformation("Store", "Checker", "00000"); err != nil {
		return err
	}
	if err := checkout.Continue(); err != nil {
		return err
	}

	return runner.RunTotalsCheck(ctx, scenario.TotalsCheck{
		Name:          "checkout summary totals",
		Screen:        scenario.ScreenSummary,
		SubtotalField: "subtotal",
		TaxField:      "tax",
		TotalField:    "total",
		Rate:          verify.Rate(deps.Suite.TaxRate),
	})
}
