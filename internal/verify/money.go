package verify

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Money is a currency amount in minor units (cents)
type Money int64

// Rate is a fractional tax rate applied to a subtotal
type Rate float64

// Validation errors
var (
	ErrInvalidAmount = errors.New("money amount must not be negative")
	ErrInvalidRate   = errors.New("tax rate must not be negative")
	ErrNotNumeric    = errors.New("value is not numeric")
)

// CentTolerance is the allowed drift, in cents, between a derived amount and
// the amount rendered by the page
const CentTolerance Money = 1

// ParseMoney parses a rendered currency string such as "$29.99" into minor
// units. A leading currency symbol and surrounding whitespace are stripped.
// Negative amounts are rejected with ErrInvalidAmount.
func ParseMoney(s string) (Money, error) {
	norm := normalizeValue(s, Spec{Kind: KindNumeric})
	f, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money(math.Floor(f*100 + 0.5)), nil
}

// String renders the amount the way the storefront does, e.g. "$29.99"
func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s$%d.%02d", sign, m/100, m%100)
}

// ValidateTax reports whether observedTax matches subtotal*rate rounded half
// away from zero to the nearest cent, within CentTolerance. Negative amounts
// signal an extraction bug upstream and return ErrInvalidAmount rather than
// a silently wrong boolean.
func ValidateTax(subtotal, observedTax Money, rate Rate) (bool, error) {
	if subtotal < 0 || observedTax < 0 {
		return false, ErrInvalidAmount
	}
	if rate < 0 {
		return false, ErrInvalidRate
	}
	expected := roundHalfAway(float64(subtotal) * float64(rate))
	return absMoney(expected-observedTax) <= CentTolerance, nil
}

// ValidateTotal reports whether observedTotal matches subtotal+tax within
// CentTolerance. Negative amounts return ErrInvalidAmount.
func ValidateTotal(subtotal, tax, observedTotal Money) (bool, error) {
	if subtotal < 0 || tax < 0 || observedTotal < 0 {
		return false, ErrInvalidAmount
	}
	return absMoney(subtotal+tax-observedTotal) <= CentTolerance, nil
}

// roundHalfAway rounds to the nearest integer cent with ties going away from
// zero. Plain float rounding diverges from this at .5 boundaries.
func roundHalfAway(cents float64) Money {
	if cents < 0 {
		return Money(math.Ceil(cents - 0.5))
	}
	return Money(math.Floor(cents + 0.5))
}

func absMoney(m Money) Money {
	if m < 0 {
		return -m
	}
	return m
}
