// Package score provides tolerance-aware comparison of scoring values
// (C1 in the component design).
//
// Every "was this the max?" and "does this predecessor reproduce the
// score?" test in the DP filler and the traceback engine MUST route
// through a Kernel so that the set of co-optimal paths is deterministic
// across platforms and floating-point rounding.
package score

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Numeric is the bound on the scoring type parameter: any ordered
// integer or floating-point kind. Matches the teacher's own all-int
// ScoringMatrix, generalized to also admit float64/float32 as the
// end-to-end scenarios in spec.md §8 require (scores like 4.0, 2.0).
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Kernel compares two scoring values for equality within Epsilon. For
// integer kinds Epsilon is zero; for floating-point kinds it defaults
// to 1e-9.
type Kernel[S Numeric] struct {
	Epsilon S
}

// New builds a Kernel with the type's default tolerance.
func New[S Numeric]() Kernel[S] {
	return Kernel[S]{Epsilon: defaultEpsilon[S]()}
}

// NewWithEpsilon builds a Kernel with an explicit, non-negative tolerance.
func NewWithEpsilon[S Numeric](epsilon S) (Kernel[S], error) {
	if epsilon < 0 {
		return Kernel[S]{}, fmt.Errorf("epsilon must be non-negative, got %v", epsilon)
	}
	return Kernel[S]{Epsilon: epsilon}, nil
}

func defaultEpsilon[S Numeric]() S {
	var zero S
	switch any(zero).(type) {
	case float32, float64:
		eps := 1e-9
		return S(eps)
	default:
		return 0
	}
}

// Equal reports whether a and b differ by no more than Epsilon.
func (k Kernel[S]) Equal(a, b S) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= k.Epsilon
}

// Less reports whether a is strictly less than b, outside tolerance.
func (k Kernel[S]) Less(a, b S) bool {
	return a < b && !k.Equal(a, b)
}

// Max returns the largest of the given values. Panics if values is empty;
// callers are expected to only invoke it with at least one candidate.
func Max[S Numeric](values ...S) S {
	if len(values) == 0 {
		panic("score.Max: no values")
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
