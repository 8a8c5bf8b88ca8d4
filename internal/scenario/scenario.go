package scenario

import (
	"context"

	"github.com/storeqa/storecheck/internal/verify"
)

// Screen names a logical screen of the storefront under test
type Screen string

// Storefront screens
const (
	ScreenLogin     Screen = "login"
	ScreenInventory Screen = "inventory"
	ScreenCart      Screen = "cart"
	ScreenCheckout  Screen = "checkout"
	ScreenSummary   Screen = "summary"
	ScreenComplete  Screen = "complete"
)

// Navigator loads named screens and reports when they are stable enough to
// read. Waiting and retry behavior lives behind this interface; the
// verification core never waits.
type Navigator interface {
	Open(ctx context.Context, screen Screen) error
	Ready(ctx context.Context, screen Screen) error
}

// DataExtractor reads the currently rendered values for a named field on a
// screen. Callers must only extract after Navigator reports the screen ready.
type DataExtractor interface {
	ExtractField(ctx context.Context, screen Screen, field string) (verify.Sequence, error)
}

// ActionDispatcher performs a UI mutation: selecting a sort option, filling
// a form field, clicking a control. The action is complete when the call
// returns.
type ActionDispatcher interface {
	TriggerAction(ctx context.Context, screen Screen, action string, params map[string]string) error
}

// ReportSink persists an evidence artifact keyed by a caller-chosen label.
// Sink failures are reporting problems, never verification failures.
type ReportSink interface {
	RecordEvidence(label string, payload []byte) error
}
