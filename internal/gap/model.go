// Package gap holds the affine gap-cost model (C3): independent
// open/extend penalties for gaps in each sequence direction.
//
// Aria equivalent:
//
//	struct GapModel
//	  dx: Float
//	  ex: Float
//	  dy: Float
//	  ey: Float
//	  invariant self.dx >= 0.0 and self.ex >= 0.0
//	  invariant self.dy >= 0.0 and self.ey >= 0.0
package gap

import (
	"fmt"

	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/aria-lang/coalign-go/internal/score"
)

// Model holds the four affine gap penalties: dx/ex open/extend a gap in
// A (a deletion from B, matrix Ix), dy/ey open/extend a gap in B (matrix Iy).
type Model[S score.Numeric] struct {
	Dx, Ex, Dy, Ey S
}

// New validates that all four penalties are non-negative and builds a Model.
func New[S score.Numeric](dx, ex, dy, ey S) (*Model[S], error) {
	for _, f := range []struct {
		name string
		v    S
	}{{"dx", dx}, {"ex", ex}, {"dy", dy}, {"ey", ey}} {
		if f.v < 0 {
			return nil, &coerr.InvalidGapPenaltyError{Field: f.name, Value: fmt.Sprintf("%v", f.v)}
		}
	}
	return &Model[S]{Dx: dx, Ex: ex, Dy: dy, Ey: ey}, nil
}

// OpenX returns the cost of opening a gap in A.
func (m *Model[S]) OpenX() S { return m.Dx }

// ExtendX returns the cost of extending a gap in A.
func (m *Model[S]) ExtendX() S { return m.Ex }

// OpenY returns the cost of opening a gap in B.
func (m *Model[S]) OpenY() S { return m.Dy }

// ExtendY returns the cost of extending a gap in B.
func (m *Model[S]) ExtendY() S { return m.Ey }

// Swapped returns the model with X and Y penalties exchanged, used by
// the A/B swap symmetry property (spec.md §8, property 5).
func (m *Model[S]) Swapped() *Model[S] {
	return &Model[S]{Dx: m.Dy, Ex: m.Ey, Dy: m.Dx, Ey: m.Ex}
}
