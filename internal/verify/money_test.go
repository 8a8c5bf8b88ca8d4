package verify

import (
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr error
	}{
		{name: "plain dollar amount", input: "$29.99", want: 2999},
		{name: "no currency symbol", input: "8.00", want: 800},
		{name: "surrounding whitespace", input: "  $1.00 \n", want: 100},
		{name: "thousands separator", input: "$1,299.50", want: 129950},
		{name: "euro symbol", input: "€15.99", want: 1599},
		{name: "zero", input: "$0.00", want: 0},
		{name: "negative amount rejected", input: "-$5.00", wantErr: ErrNotNumeric},
		{name: "negative bare amount rejected", input: "-5.00", wantErr: ErrInvalidAmount},
		{name: "not a number", input: "Free", wantErr: ErrNotNumeric},
		{name: "empty string", input: "", wantErr: ErrNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMoney(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMoney(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		amount Money
		want   string
	}{
		{2999, "$29.99"},
		{100, "$1.00"},
		{5, "$0.05"},
		{0, "$0.00"},
		{-150, "-$1.50"},
	}

	for _, tt := range tests {
		if got := tt.amount.String(); got != tt.want {
			t.Errorf("Money(%d).String() = %q, want %q", int64(tt.amount), got, tt.want)
		}
	}
}

func TestValidateTax(t *testing.T) {
	tests := []struct {
		name     string
		subtotal Money
		observed Money
		rate     Rate
		want     bool
		wantErr  error
	}{
		{name: "exact tax", subtotal: 10000, observed: 800, rate: 0.08, want: true},
		{name: "one cent high is within tolerance", subtotal: 10000, observed: 801, rate: 0.08, want: true},
		{name: "one cent low is within tolerance", subtotal: 10000, observed: 799, rate: 0.08, want: true},
		{name: "fifty cents off fails", subtotal: 10000, observed: 850, rate: 0.08, want: false},
		{name: "half cent rounds away from zero", subtotal: 1230, observed: 62, rate: 0.05, want: true},
		{name: "zero subtotal expects zero tax", subtotal: 0, observed: 0, rate: 0.08, want: true},
		{name: "negative subtotal rejected", subtotal: -100, observed: 8, rate: 0.08, wantErr: ErrInvalidAmount},
		{name: "negative observed tax rejected", subtotal: 100, observed: -8, rate: 0.08, wantErr: ErrInvalidAmount},
		{name: "negative rate rejected", subtotal: 100, observed: 8, rate: -0.08, wantErr: ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTax(tt.subtotal, tt.observed, tt.rate)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateTax() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateTax() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateTax(%d, %d, %v) = %v, want %v", tt.subtotal, tt.observed, tt.rate, got, tt.want)
			}
		})
	}
}

func TestValidateTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal Money
		tax      Money
		observed Money
		want     bool
		wantErr  error
	}{
		{name: "exact total", subtotal: 10000, tax: 800, observed: 10800, want: true},
		{name: "one cent off is within tolerance", subtotal: 10000, tax: 800, observed: 10801, want: true},
		{name: "two cents off fails", subtotal: 10000, tax: 800, observed: 10798, want: false},
		{name: "negative subtotal rejected", subtotal: -1, tax: 800, observed: 10800, wantErr: ErrInvalidAmount},
		{name: "negative total rejected", subtotal: 10000, tax: 800, observed: -10800, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTotal(tt.subtotal, tt.tax, tt.observed)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateTotal() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateTotal() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateTotal(%d, %d, %d) = %v, want %v", tt.subtotal, tt.tax, tt.observed, got, tt.want)
			}
		})
	}
}
