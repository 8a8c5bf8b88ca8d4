package verify

import (
	"errors"
	"testing"
)

func TestIsOrdered(t *testing.T) {
	tests := []struct {
		name    string
		seq     Sequence
		spec    Spec
		want    bool
		wantErr error
	}{
		{
			name: "empty sequence is trivially ordered",
			seq:  Sequence{},
			spec: Spec{Kind: KindNumeric, Direction: Ascending},
			want: true,
		},
		{
			name: "single element is trivially ordered",
			seq:  Sequence{"$9.99"},
			spec: Spec{Kind: KindNumeric, Direction: Descending},
			want: true,
		},
		{
			name: "prices ascending",
			seq:  Sequence{"$7.99", "$9.99", "$15.99", "$29.99"},
			spec: Spec{Kind: KindNumeric, Direction: Ascending},
			want: true,
		},
		{
			name: "prices descending",
			seq:  Sequence{"$49.99", "$29.99", "$15.99", "$7.99"},
			spec: Spec{Kind: KindNumeric, Direction: Descending},
			want: true,
		},
		{
			name: "adjacent descending pair breaks ascending",
			seq:  Sequence{"$7.99", "$29.99", "$15.99"},
			spec: Spec{Kind: KindNumeric, Direction: Ascending},
			want: false,
		},
		{
			name: "equal adjacent elements satisfy ascending",
			seq:  Sequence{"$9.99", "$9.99", "$15.99"},
			spec: Spec{Kind: KindNumeric, Direction: Ascending},
			want: true,
		},
		{
			name: "equal adjacent elements satisfy descending",
			seq:  Sequence{"$9.99", "$9.99", "$7.99"},
			spec: Spec{Kind: KindNumeric, Direction: Descending},
			want: true,
		},
		{
			name: "names ascending",
			seq:  Sequence{"Apple", "Mango", "Zebra"},
			spec: Spec{Kind: KindLexicographic, Direction: Ascending},
			want: true,
		},
		{
			name: "names not descending when tail pair ascends",
			seq:  Sequence{"Zebra", "Apple", "Mango"},
			spec: Spec{Kind: KindLexicographic, Direction: Descending},
			want: false,
		},
		{
			name: "names descending after reorder",
			seq:  Sequence{"Zebra", "Mango", "Apple"},
			spec: Spec{Kind: KindLexicographic, Direction: Descending},
			want: true,
		},
		{
			name: "case fold compares across cases",
			seq:  Sequence{"apple", "Banana", "cherry"},
			spec: Spec{Kind: KindLexicographic, Direction: Ascending, Fold: true},
			want: true,
		},
		{
			name: "whitespace trimmed before comparison",
			seq:  Sequence{"  $7.99 ", "$9.99\n"},
			spec: Spec{Kind: KindNumeric, Direction: Ascending},
			want: true,
		},
		{
			name:    "non-numeric value under numeric comparison",
			seq:     Sequence{"$7.99", "sold out"},
			spec:    Spec{Kind: KindNumeric, Direction: Ascending},
			want:    false,
			wantErr: ErrNotNumeric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsOrdered(tt.seq, tt.spec)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("IsOrdered() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("IsOrdered() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsOrdered() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOrderedDoesNotMutateInput(t *testing.T) {
	seq := Sequence{" $9.99 ", "$7.99"}
	if _, err := IsOrdered(seq, Spec{Kind: KindNumeric, Direction: Descending}); err != nil {
		t.Fatalf("IsOrdered() unexpected error = %v", err)
	}
	if seq[0] != " $9.99 " || seq[1] != "$7.99" {
		t.Errorf("input sequence was mutated: %v", seq)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	specs := []Spec{
		{Kind: KindNumeric, Direction: Ascending},
		{Kind: KindLexicographic, Direction: Descending, Fold: true},
	}
	seq := Sequence{" $1,299.00 ", "Sauce Labs Backpack\t", "€9.99"}

	for _, spec := range specs {
		once := Normalize(seq, spec)
		twice := Normalize(once, spec)
		for i := range once {
			if once[i] != twice[i] {
				t.Errorf("spec %+v: normalize not a fixed point at %d: %q != %q", spec, i, once[i], twice[i])
			}
		}
	}
}

func TestMatchesExpected(t *testing.T) {
	lex := Spec{Kind: KindLexicographic, Direction: Ascending}
	num := Spec{Kind: KindNumeric, Direction: Ascending}

	tests := []struct {
		name     string
		seq      Sequence
		expected Sequence
		spec     Spec
		want     bool
	}{
		{
			name:     "identical sequences match",
			seq:      Sequence{"a", "b", "c"},
			expected: Sequence{"a", "b", "c"},
			spec:     lex,
			want:     true,
		},
		{
			name:     "same set in different order does not match",
			seq:      Sequence{"a", "b", "c"},
			expected: Sequence{"c", "b", "a"},
			spec:     lex,
			want:     false,
		},
		{
			name:     "length mismatch fails",
			seq:      Sequence{"a", "b"},
			expected: Sequence{"a", "b", "c"},
			spec:     lex,
			want:     false,
		},
		{
			name:     "rendered currency matches bare numbers",
			seq:      Sequence{"$7.99", "$29.99"},
			expected: Sequence{"7.99", "29.99"},
			spec:     num,
			want:     true,
		},
		{
			name:     "trailing zero difference matches numerically",
			seq:      Sequence{"$7.9"},
			expected: Sequence{"7.90"},
			spec:     num,
			want:     true,
		},
		{
			name:     "single differing position fails",
			seq:      Sequence{"$7.99", "$29.99"},
			expected: Sequence{"$7.99", "$19.99"},
			spec:     num,
			want:     false,
		},
		{
			name:     "both empty match",
			seq:      Sequence{},
			expected: Sequence{},
			spec:     lex,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesExpected(tt.seq, tt.expected, tt.spec); got != tt.want {
				t.Errorf("MatchesExpected() = %v, want %v", got, tt.want)
			}
		})
	}
}
