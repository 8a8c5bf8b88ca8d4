package verify

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects how sequence elements are interpreted for comparison
type Kind string

// Comparison kinds
const (
	KindLexicographic Kind = "lexicographic"
	KindNumeric       Kind = "numeric"
)

// Direction selects the ordering predicate applied to adjacent pairs
type Direction string

// Ordering directions
const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Spec configures an ordering check: comparison kind, direction, and an
// optional case fold for lexicographic comparison
type Spec struct {
	Kind      Kind
	Direction Direction
	Fold      bool
}

// Sequence is an ordered capture of rendered values read from a live page.
// It is never mutated after capture; normalization produces a derived copy.
type Sequence []string

// currencySymbols are stripped from the front of a value before numeric parsing
var currencySymbols = []string{"$", "€", "£"}

// Normalize returns a derived copy of seq with the spec's normalization
// applied to each element: whitespace trimmed, a leading currency symbol and
// thousands separators removed for numeric comparison, and an optional case
// fold for lexicographic comparison. Normalization is a fixed point under
// repeated application.
func Normalize(seq Sequence, spec Spec) Sequence {
	out := make(Sequence, len(seq))
	for i, v := range seq {
		out[i] = normalizeValue(v, spec)
	}
	return out
}

func normalizeValue(v string, spec Spec) string {
	v = strings.TrimSpace(v)
	switch spec.Kind {
	case KindNumeric:
		for _, sym := range currencySymbols {
			if strings.HasPrefix(v, sym) {
				v = strings.TrimSpace(strings.TrimPrefix(v, sym))
				break
			}
		}
		v = strings.ReplaceAll(v, ",", "")
	case KindLexicographic:
		if spec.Fold {
			v = strings.ToLower(v)
		}
	}
	return v
}

// IsOrdered reports whether every adjacent pair in seq satisfies the spec's
// directional predicate after normalization. Sequences of length zero or one
// are trivially ordered. Equal adjacent elements satisfy both directions;
// this is intentional, not a defect. An error is returned only when a value
// cannot be parsed under numeric comparison.
func IsOrdered(seq Sequence, spec Spec) (bool, error) {
	if len(seq) <= 1 {
		return true, nil
	}

	norm := Normalize(seq, spec)

	switch spec.Kind {
	case KindNumeric:
		nums, err := parseAll(norm)
		if err != nil {
			return false, err
		}
		for i := 0; i < len(nums)-1; i++ {
			if !pairOrdered(compareFloats(nums[i], nums[i+1]), spec.Direction) {
				return false, nil
			}
		}
	default:
		for i := 0; i < len(norm)-1; i++ {
			if !pairOrdered(strings.Compare(norm[i], norm[i+1]), spec.Direction) {
				return false, nil
			}
		}
	}
	return true, nil
}

// MatchesExpected reports position-sensitive equality of seq against
// expected after normalizing both sides. It is false when lengths differ or
// any position differs. This is strictly stronger than IsOrdered: callers
// should check both, since an ordered sequence can still hold wrong data.
func MatchesExpected(seq, expected Sequence, spec Spec) bool {
	if len(seq) != len(expected) {
		return false
	}

	got := Normalize(seq, spec)
	want := Normalize(expected, spec)

	for i := range got {
		if spec.Kind == KindNumeric {
			a, errA := parseValue(got[i])
			b, errB := parseValue(want[i])
			if errA == nil && errB == nil {
				if compareFloats(a, b) != 0 {
					return false
				}
				continue
			}
		}
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func parseAll(norm Sequence) ([]float64, error) {
	nums := make([]float64, len(norm))
	for i, v := range norm {
		f, err := parseValue(v)
		if err != nil {
			return nil, err
		}
		nums[i] = f
	}
	return nums, nil
}

func parseValue(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, v)
	}
	return f, nil
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func pairOrdered(cmp int, dir Direction) bool {
	if dir == Descending {
		return cmp >= 0
	}
	return cmp <= 0
}
