// Package align implements the driver (C6): it wires the score kernel,
// substitution table, gap model, and DP grid together, then hands the
// filled grid to the traceback engine and exposes the resulting
// alignments and their summary statistics.
//
// Grounded on the teacher's thin SmithWaterman/NeedlemanWunsch entry
// points and its Alignment.{Identity,ToCIGAR,GapOpenings,MatchCount}
// family of summary methods, generalized from a single best path to
// the full co-optimal set.
package align

import (
	"context"
	"fmt"
	"strings"

	"github.com/aria-lang/coalign-go/internal/dp"
	"github.com/aria-lang/coalign-go/internal/gap"
	"github.com/aria-lang/coalign-go/internal/score"
	"github.com/aria-lang/coalign-go/internal/seq"
	"github.com/aria-lang/coalign-go/internal/subst"
	"github.com/aria-lang/coalign-go/internal/traceback"
)

// GapSymbol is the textual placeholder for a gap in an aligned string
// (spec.md §6, "Gaps are represented by `_`").
const GapSymbol = '_'

// Alignment is one co-optimal alignment pair. Re-exported so callers
// outside this module need only import package align.
type Alignment = traceback.Alignment

// Request bundles everything the driver needs to run one alignment.
type Request[S dp.Numeric] struct {
	A        *seq.Sequence
	B        *seq.Sequence
	Table    *subst.Table[S]
	GapModel *gap.Model[S]
	Mode     dp.Mode
	Kernel   score.Kernel[S]
}

// Driver owns a filled grid and the sequences it was built from, ready
// to stream traceback output.
type Driver[S dp.Numeric] struct {
	grid *dp.Grid[S]
	a, b *seq.Sequence
}

// Run builds and fills the grid for req, failing fast on any
// precondition violation (spec.md §4.6).
func Run[S dp.Numeric](req Request[S]) (*Driver[S], error) {
	grid, err := dp.Fill(req.A, req.B, req.Table, req.GapModel, req.Mode, req.Kernel)
	if err != nil {
		return nil, err
	}
	return &Driver[S]{grid: grid, a: req.A, b: req.B}, nil
}

// BestScore returns the optimal score under the request's mode.
func (d *Driver[S]) BestScore() (S, bool) {
	return d.grid.BestScore()
}

// Stream enumerates every co-optimal alignment in bounded chunks.
func (d *Driver[S]) Stream(ctx context.Context) <-chan []Alignment {
	return traceback.New(d.grid, d.a, d.b).Stream(ctx)
}

// All drains Stream into a single slice. Intended for small grids and
// tests; production callers should consume Stream directly.
func (d *Driver[S]) All(ctx context.Context) []Alignment {
	return traceback.New(d.grid, d.a, d.b).All(ctx)
}

// Grid exposes the underlying filled grid, e.g. for property tests
// that inspect individual cells.
func (d *Driver[S]) Grid() *dp.Grid[S] { return d.grid }

// RecomputeScore independently recomputes an alignment's score from
// its gapped strings, the substitution table and the gap model, by
// walking matched columns and contiguous gap runs. Used to verify
// property 2 of spec.md §8: the recomputed score must equal
// best_score() within the kernel's tolerance.
func RecomputeScore[S dp.Numeric](al Alignment, table *subst.Table[S], gapModel *gap.Model[S]) (S, error) {
	var zero S
	aRunes := []rune(al.A)
	bRunes := []rune(al.B)
	if len(aRunes) != len(bRunes) {
		return zero, fmt.Errorf("align: gapped strings have different lengths (%d vs %d)", len(aRunes), len(bRunes))
	}

	var total S
	runLen := 0
	const (
		noRun = iota
		gapInA
		gapInB
	)
	runSide := noRun

	flush := func() {
		switch runSide {
		case gapInA:
			total -= gapModel.Dx + S(runLen-1)*gapModel.Ex
		case gapInB:
			total -= gapModel.Dy + S(runLen-1)*gapModel.Ey
		}
		runLen = 0
		runSide = noRun
	}

	for i := range aRunes {
		ca, cb := aRunes[i], bRunes[i]
		switch {
		case ca == GapSymbol:
			if runSide != gapInA {
				flush()
				runSide = gapInA
			}
			runLen++
		case cb == GapSymbol:
			if runSide != gapInB {
				flush()
				runSide = gapInB
			}
			runLen++
		default:
			flush()
			s, err := table.ScoreOf(ca, cb)
			if err != nil {
				return zero, err
			}
			total += s
		}
	}
	flush()

	return total, nil
}

// Summary holds per-alignment statistics that spec.md's distillation
// dropped but the teacher's own Alignment type computed.
type Summary struct {
	Length      int
	Matches     int
	Mismatches  int
	GapOpenings int
	Identity    float64
	CIGAR       string
}

// Summarize computes Summary for one alignment.
func Summarize(al Alignment) Summary {
	aRunes := []rune(al.A)
	bRunes := []rune(al.B)

	var matches, mismatches, openings int
	var inGapA, inGapB bool
	var cigar strings.Builder
	var currentOp byte
	count := 0

	for i := range aRunes {
		ca, cb := aRunes[i], bRunes[i]

		var op byte
		switch {
		case ca == GapSymbol:
			op = 'I'
		case cb == GapSymbol:
			op = 'D'
		case ca == cb:
			op = 'M'
			matches++
		default:
			op = 'X'
			mismatches++
		}

		if ca == GapSymbol {
			if !inGapA {
				openings++
				inGapA = true
			}
		} else {
			inGapA = false
		}
		if cb == GapSymbol {
			if !inGapB {
				openings++
				inGapB = true
			}
		} else {
			inGapB = false
		}

		if op == currentOp {
			count++
		} else {
			if count > 0 {
				cigar.WriteString(fmt.Sprintf("%d%c", count, currentOp))
			}
			currentOp = op
			count = 1
		}
	}
	if count > 0 {
		cigar.WriteString(fmt.Sprintf("%d%c", count, currentOp))
	}

	length := len(aRunes)
	var identity float64
	if length > 0 {
		identity = float64(matches) / float64(length)
	}

	return Summary{
		Length:      length,
		Matches:     matches,
		Mismatches:  mismatches,
		GapOpenings: openings,
		Identity:    identity,
		CIGAR:       cigar.String(),
	}
}
