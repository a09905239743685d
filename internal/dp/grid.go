// Package dp implements the three-matrix (Gotoh) DP grid filler (C4):
// it populates M, Ix, Iy with scores and tie-collected back-pointer
// sets under the affine gap-cost recurrences of spec.md §4.4.
//
// This is the component the teacher's NeedlemanWunsch/SmithWaterman H
// matrices generalize from: instead of one best AlignDirection per
// cell, every cell here carries a set of predecessor matrices that tie
// for its maximum, and the three matrices are coupled rather than
// collapsed into one.
package dp

import (
	"github.com/aria-lang/coalign-go/internal/gap"
	"github.com/aria-lang/coalign-go/internal/score"
	"github.com/aria-lang/coalign-go/internal/seq"
	"github.com/aria-lang/coalign-go/internal/subst"
)

// Grid holds the three filled matrices for a single alignment run.
type Grid[S Numeric] struct {
	rows, cols int
	mode       Mode
	kernel     score.Kernel[S]
	cells      [3][][]Cell[S] // indexed by Matrix
}

// candidate is one predecessor term in a recurrence: its originating
// matrix, whether the predecessor cell is reachable, and the value it
// contributes (already net of any gap penalty).
type candidate[S Numeric] struct {
	mat   Matrix
	valid bool
	value S
}

// bestAndPointers finds the maximum among valid candidates and the set
// of candidates (in the caller-supplied, already-canonical order) that
// reproduce it within the kernel's tolerance.
func bestAndPointers[S Numeric](kernel score.Kernel[S], cands []candidate[S]) (S, PointerSet, bool) {
	var zero S
	var values []S
	for _, c := range cands {
		if c.valid {
			values = append(values, c.value)
		}
	}
	if len(values) == 0 {
		return zero, nil, false
	}
	best := score.Max(values...)

	var pointers PointerSet
	for _, c := range cands {
		if c.valid && kernel.Equal(c.value, best) {
			pointers = pointers.add(c.mat)
		}
	}
	return best, pointers, true
}

func newMatrix[S Numeric](rows, cols int) [][]Cell[S] {
	m := make([][]Cell[S], rows)
	for i := range m {
		m[i] = make([]Cell[S], cols)
	}
	return m
}

// Fill builds and populates a Grid for sequences A and B under table,
// gapModel and mode.
func Fill[S Numeric](a, b *seq.Sequence, table *subst.Table[S], gapModel *gap.Model[S], mode Mode, kernel score.Kernel[S]) (*Grid[S], error) {
	rows, cols := a.Len()+1, b.Len()+1

	g := &Grid[S]{
		rows:   rows,
		cols:   cols,
		mode:   mode,
		kernel: kernel,
		cells: [3][][]Cell[S]{
			M:  newMatrix[S](rows, cols),
			Ix: newMatrix[S](rows, cols),
			Iy: newMatrix[S](rows, cols),
		},
	}

	g.initBoundary(gapModel)

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			if err := g.fillCell(i, j, a, b, table, gapModel); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func (g *Grid[S]) initBoundary(gapModel *gap.Model[S]) {
	var zero S

	switch g.mode {
	case Global:
		g.cells[M][0][0] = Cell[S]{Score: zero, Valid: true}
		for i := 1; i < g.rows; i++ {
			g.cells[M][i][0] = Cell[S]{Valid: false}
			g.cells[Ix][i][0] = Cell[S]{Valid: false}
			g.cells[Iy][i][0] = Cell[S]{Score: -gapModel.Dy - S(i-1)*gapModel.Ey, Valid: true}
		}
		for j := 1; j < g.cols; j++ {
			g.cells[M][0][j] = Cell[S]{Valid: false}
			g.cells[Ix][0][j] = Cell[S]{Score: -gapModel.Dx - S(j-1)*gapModel.Ex, Valid: true}
			g.cells[Iy][0][j] = Cell[S]{Valid: false}
		}
		g.cells[Ix][0][0] = Cell[S]{Valid: false}
		g.cells[Iy][0][0] = Cell[S]{Valid: false}

	case Local:
		for i := 0; i < g.rows; i++ {
			g.cells[M][i][0] = Cell[S]{Score: zero, Valid: true}
			g.cells[Ix][i][0] = Cell[S]{Score: zero, Valid: true}
			g.cells[Iy][i][0] = Cell[S]{Score: zero, Valid: true}
		}
		for j := 0; j < g.cols; j++ {
			g.cells[M][0][j] = Cell[S]{Score: zero, Valid: true}
			g.cells[Ix][0][j] = Cell[S]{Score: zero, Valid: true}
			g.cells[Iy][0][j] = Cell[S]{Score: zero, Valid: true}
		}
	}
}

func (g *Grid[S]) fillCell(i, j int, a, b *seq.Sequence, table *subst.Table[S], gapModel *gap.Model[S]) error {
	mPrev := g.cells[M][i-1][j-1]
	ixPrev := g.cells[Ix][i-1][j-1]
	iyPrev := g.cells[Iy][i-1][j-1]

	sub, err := table.ScoreOf(a.At(i), b.At(j))
	if err != nil {
		return err
	}

	mBest, mPointers, mAny := bestAndPointers(g.kernel, []candidate[S]{
		{M, mPrev.Valid, mPrev.Score},
		{Ix, ixPrev.Valid, ixPrev.Score},
		{Iy, iyPrev.Valid, iyPrev.Score},
	})
	g.cells[M][i][j] = g.settle(mAny, sub+mBest, mPointers)

	ixFrom := g.cells[M][i][j-1]
	ixFromIx := g.cells[Ix][i][j-1]
	ixFromIy := g.cells[Iy][i][j-1]
	ixBest, ixPointers, ixAny := bestAndPointers(g.kernel, []candidate[S]{
		{M, ixFrom.Valid, ixFrom.Score - gapModel.Dx},
		{Ix, ixFromIx.Valid, ixFromIx.Score - gapModel.Ex},
		{Iy, ixFromIy.Valid, ixFromIy.Score - gapModel.Dx},
	})
	g.cells[Ix][i][j] = g.settle(ixAny, ixBest, ixPointers)

	iyFrom := g.cells[M][i-1][j]
	iyFromIx := g.cells[Ix][i-1][j]
	iyFromIy := g.cells[Iy][i-1][j]
	iyBest, iyPointers, iyAny := bestAndPointers(g.kernel, []candidate[S]{
		{M, iyFrom.Valid, iyFrom.Score - gapModel.Dy},
		{Ix, iyFromIx.Valid, iyFromIx.Score - gapModel.Dy},
		{Iy, iyFromIy.Valid, iyFromIy.Score - gapModel.Ey},
	})
	g.cells[Iy][i][j] = g.settle(iyAny, iyBest, iyPointers)

	return nil
}

// settle applies the local-mode clamp-to-zero rule (and its
// accompanying pointer-set reset) to a freshly computed candidate
// value, or marks the cell unreachable in global mode when no
// predecessor was valid.
func (g *Grid[S]) settle(reachable bool, val S, pointers PointerSet) Cell[S] {
	if g.mode == Global {
		if !reachable {
			return Cell[S]{Valid: false}
		}
		return Cell[S]{Score: val, Valid: true, Pointers: pointers}
	}

	// Local: always valid; clamp to zero and drop pointers on a fresh start.
	if val < 0 {
		val = 0
	}
	var zero S
	if g.kernel.Equal(val, zero) {
		return Cell[S]{Score: zero, Valid: true}
	}
	return Cell[S]{Score: val, Valid: true, Pointers: pointers}
}

// BestScore returns the optimum under the grid's mode.
func (g *Grid[S]) BestScore() (S, bool) {
	var zero S
	m, n := g.rows-1, g.cols-1

	switch g.mode {
	case Global:
		var values []S
		for _, mat := range [3]Matrix{M, Ix, Iy} {
			c := g.cells[mat][m][n]
			if c.Valid {
				values = append(values, c.Score)
			}
		}
		if len(values) == 0 {
			return zero, false
		}
		return score.Max(values...), true

	default: // Local
		if m == 0 || n == 0 {
			return zero, true
		}
		best := g.cells[M][1][1].Score
		for i := 1; i <= m; i++ {
			for j := 1; j <= n; j++ {
				v := g.cells[M][i][j].Score
				if v > best {
					best = v
				}
			}
		}
		return best, true
	}
}

// StartCell names one (matrix, i, j) from which traceback begins.
type StartCell struct {
	Matrix Matrix
	I, J   int
}

// StartCells returns the canonically ordered set of starting points for
// traceback (spec.md §4.4 "Result").
func (g *Grid[S]) StartCells() []StartCell {
	best, ok := g.BestScore()
	if !ok {
		return nil
	}

	m, n := g.rows-1, g.cols-1
	var out []StartCell

	switch g.mode {
	case Global:
		for _, mat := range [3]Matrix{M, Ix, Iy} {
			c := g.cells[mat][m][n]
			if c.Valid && g.kernel.Equal(c.Score, best) {
				out = append(out, StartCell{mat, m, n})
			}
		}

	default: // Local
		for i := 1; i <= m; i++ {
			for j := 1; j <= n; j++ {
				if g.kernel.Equal(g.cells[M][i][j].Score, best) {
					out = append(out, StartCell{M, i, j})
				}
			}
		}
	}
	return out
}

// Cell returns the cell at (mat, i, j), the boundary included.
func (g *Grid[S]) Cell(mat Matrix, i, j int) Cell[S] {
	return g.cells[mat][i][j]
}

// Dims returns the grid's (|A|+1, |B|+1) dimensions.
func (g *Grid[S]) Dims() (rows, cols int) { return g.rows, g.cols }

// Mode returns the grid's alignment mode.
func (g *Grid[S]) Mode() Mode { return g.mode }
