package dp

import "github.com/aria-lang/coalign-go/internal/score"

// Numeric re-exports score.Numeric so callers only need to import dp.
type Numeric = score.Numeric

// Matrix names one of the three coupled DP matrices (§3).
type Matrix int

const (
	M Matrix = iota
	Ix
	Iy
)

func (mat Matrix) String() string {
	switch mat {
	case M:
		return "M"
	case Ix:
		return "Ix"
	case Iy:
		return "Iy"
	default:
		return "?"
	}
}

// Mode selects global (end-to-end) or local (best-substring) alignment.
type Mode int

const (
	Global Mode = iota
	Local
)

// PointerSet is the set of predecessor matrices that tie for a cell's
// maximum, in the canonical order M, Ix, Iy (spec.md §4.5,
// "Determinism"). The displacement associated with each pointer is
// implied by the current cell's own matrix (M moves diagonally, Ix
// moves left, Iy moves up), so a pointer only needs to record which
// matrix it leads to.
type PointerSet []Matrix

// add appends mat without checking for an existing entry; callers probe
// each matrix at most once and always in M, Ix, Iy order, so the set
// stays duplicate-free and in canonical order.
func (p PointerSet) add(mat Matrix) PointerSet {
	return append(p, mat)
}

// Cell holds one (matrix, i, j) entry: its score and the back-pointers
// that justify it. Valid is false for unreachable boundary cells in
// global mode (the spec's −∞ sentinel, represented here as an explicit
// flag so integer score types never need to represent an out-of-range
// sentinel value).
type Cell[S Numeric] struct {
	Score    S
	Valid    bool
	Pointers PointerSet
}
