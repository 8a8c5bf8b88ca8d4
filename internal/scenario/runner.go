package scenario

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storeqa/storecheck/internal/verify"
)

// SortCheck is a declarative ordering verification: trigger a sort action on
// a screen, read a field, and verify the result against an ordering spec and
// an optional expected reference list.
type SortCheck struct {
	Name     string
	Screen   Screen
	Action   string
	Params   map[string]string
	Field    string
	Spec     verify.Spec
	Expected verify.Sequence
}

// TotalsCheck is a declarative checkout-summary verification: read subtotal,
// tax, and total fields from a screen and validate their arithmetic
// relationship under the configured tax rate.
type TotalsCheck struct {
	Name          string
	Screen        Screen
	SubtotalField string
	TaxField      string
	TotalField    string
	Rate          verify.Rate
}

// Runner drives the collaborator chain for declarative checks:
// Navigator -> ActionDispatcher -> DataExtractor -> verify -> ReportSink.
// It is stateless apart from its collaborators and safe to share across
// concurrently running scenarios.
type Runner struct {
	nav     Navigator
	actions ActionDispatcher
	extract DataExtractor
	sink    ReportSink
	logger  zerolog.Logger
}

// NewRunner creates a runner over the given collaborators. sink may be nil
// when no evidence should be persisted.
func NewRunner(nav Navigator, actions ActionDispatcher, extract DataExtractor, sink ReportSink, logger zerolog.Logger) *Runner {
	return &Runner{
		nav:     nav,
		actions: actions,
		extract: extract,
		sink:    sink,
		logger:  logger,
	}
}

// sortResult is the structured evidence payload for a sort check
type sortResult struct {
	Name      string           `json:"name"`
	Screen    Screen           `json:"screen"`
	Field     string           `json:"field"`
	Kind      verify.Kind      `json:"kind"`
	Direction verify.Direction `json:"direction"`
	Observed  verify.Sequence  `json:"observed"`
	Expected  verify.Sequence  `json:"expected,omitempty"`
	Ordered   bool             `json:"ordered"`
	Matched   *bool            `json:"matched,omitempty"`
}

// totalsResult is the structured evidence payload for a totals check
type totalsResult struct {
	Name       string       `json:"name"`
	Screen     Screen       `json:"screen"`
	Subtotal   verify.Money `json:"subtotal_cents"`
	Tax        verify.Money `json:"tax_cents"`
	Total      verify.Money `json:"total_cents"`
	Rate       verify.Rate  `json:"rate"`
	TaxValid   bool         `json:"tax_valid"`
	TotalValid bool         `json:"total_valid"`
}

// RunSortCheck executes a SortCheck. A false verification is converted into
// a descriptive error carrying the observed and expected sequences;
// collaborator failures propagate wrapped but unretried.
func (r *Runner) RunSortCheck(ctx context.Context, chk SortCheck) error {
	if err := r.nav.Open(ctx, chk.Screen); err != nil {
		return fmt.Errorf("sort check %q: open %s: %w", chk.Name, chk.Screen, err)
	}
	if err := r.nav.Ready(ctx, chk.Screen); err != nil {
		return fmt.Errorf("sort check %q: screen %s not ready: %w", chk.Name, chk.Screen, err)
	}

	if chk.Action != "" {
		if err := r.actions.TriggerAction(ctx, chk.Screen, chk.Action, chk.Params); err != nil {
			return fmt.Errorf("sort check %q: action %s: %w", chk.Name, chk.Action, err)
		}
	}

	seq, err := r.extract.ExtractField(ctx, chk.Screen, chk.Field)
	if err != nil {
		return fmt.Errorf("sort check %q: extract %s: %w", chk.Name, chk.Field, err)
	}

	ordered, err := verify.IsOrdered(seq, chk.Spec)
	if err != nil {
		return fmt.Errorf("sort check %q: %w", chk.Name, err)
	}

	result := sortResult{
		Name:      chk.Name,
		Screen:    chk.Screen,
		Field:     chk.Field,
		Kind:      chk.Spec.Kind,
		Direction: chk.Spec.Direction,
		Observed:  seq,
		Expected:  chk.Expected,
		Ordered:   ordered,
	}

	var matched bool
	if len(chk.Expected) > 0 {
		matched = verify.MatchesExpected(seq, chk.Expected, chk.Spec)
		result.Matched = &matched
	}

	r.record(chk.Name, result)

	if !ordered {
		return fmt.Errorf("sort check %q: field %s on %s is not in %s %s order: got %v",
			chk.Name, chk.Field, chk.Screen, chk.Spec.Kind, chk.Spec.Direction, seq)
	}
	if len(chk.Expected) > 0 && !matched {
		return fmt.Errorf("sort check %q: field %s on %s does not match expected listing: got %v, want %v",
			chk.Name, chk.Field, chk.Screen, seq, chk.Expected)
	}
	return nil
}

// RunTotalsCheck executes a TotalsCheck against the checkout summary fields.
func (r *Runner) RunTotalsCheck(ctx context.Context, chk TotalsCheck) error {
	if err := r.nav.Ready(ctx, chk.Screen); err != nil {
		return fmt.Errorf("totals check %q: screen %s not ready: %w", chk.Name, chk.Screen, err)
	}

	subtotal, err := r.extractMoney(ctx, chk.Screen, chk.SubtotalField)
	if err != nil {
		return fmt.Errorf("totals check %q: %w", chk.Name, err)
	}
	tax, err := r.extractMoney(ctx, chk.Screen, chk.TaxField)
	if err != nil {
		return fmt.Errorf("totals check %q: %w", chk.Name, err)
	}
	total, err := r.extractMoney(ctx, chk.Screen, chk.TotalField)
	if err != nil {
		return fmt.Errorf("totals check %q: %w", chk.Name, err)
	}

	taxValid, err := verify.ValidateTax(subtotal, tax, chk.Rate)
	if err != nil {
		return fmt.Errorf("totals check %q: tax validation: %w", chk.Name, err)
	}
	totalValid, err := verify.ValidateTotal(subtotal, tax, total)
	if err != nil {
		return fmt.Errorf("totals check %q: total validation: %w", chk.Name, err)
	}

	r.record(chk.Name, totalsResult{
		Name:       chk.Name,
		Screen:     chk.Screen,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      total,
		Rate:       chk.Rate,
		TaxValid:   taxValid,
		TotalValid: totalValid,
	})

	if !taxValid {
		return fmt.Errorf("totals check %q: observed tax %s does not match %s at rate %v",
			chk.Name, tax, subtotal, chk.Rate)
	}
	if !totalValid {
		return fmt.Errorf("totals check %q: observed total %s does not match %s + %s",
			chk.Name, total, subtotal, tax)
	}
	return nil
}

// extractMoney reads a single-value field and parses it as a currency amount
func (r *Runner) extractMoney(ctx context.Context, screen Screen, field string) (verify.Money, error) {
	seq, err := r.extract.ExtractField(ctx, screen, field)
	if err != nil {
		return 0, fmt.Errorf("extract %s: %w", field, err)
	}
	if len(seq) != 1 {
		return 0, fmt.Errorf("extract %s: expected a single value, got %d", field, len(seq))
	}
	return verify.ParseMoney(seq[0])
}

// record persists an evidence payload, logging sink failures instead of
// surfacing them as verification failures
func (r *Runner) record(label string, payload any) {
	if r.sink == nil {
		return
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		r.logger.Error().Err(err).Str("label", label).Msg("failed to encode evidence payload")
		return
	}
	if err := r.sink.RecordEvidence(label, data); err != nil {
		r.logger.Warn().Err(err).Str("label", label).Msg("failed to record evidence")
	}
}
