// Package traceback implements the traceback engine (C5): an
// exhaustive depth-first enumeration of every co-optimal alignment
// encoded in a filled dp.Grid's pointer DAG, streamed in bounded
// chunks so peak memory stays independent of the number of co-optimal
// paths (spec.md §4.5).
//
// This generalizes the teacher's tracebackGlobal/tracebackLocal, which
// each followed a single best AlignDirection per cell. Here every cell
// may carry several tied back-pointers, so the walk forks instead of
// following one path, and the engine must share common suffixes
// between forked paths rather than building one flat string.
package traceback

import (
	"context"

	"github.com/aria-lang/coalign-go/internal/dp"
	"github.com/aria-lang/coalign-go/internal/seq"
)

// ChunkSize bounds how many completed alignments accumulate in memory
// before being handed to the consumer (spec.md §4.5).
const ChunkSize = 16384

// Alignment is one co-optimal alignment, rendered as a pair of
// equal-length gapped strings.
type Alignment struct {
	A, B string
}

// pathNode is a cons cell in the reverse-chronological chain of steps
// taken by one DFS branch. Sharing ancestors between forked branches
// keeps memory at O(L) per active branch instead of O(L) per emitted
// alignment.
type pathNode struct {
	parent *pathNode
	aCh    rune
	bCh    rune
}

// Engine enumerates the co-optimal alignments recorded in a grid.
type Engine[S dp.Numeric] struct {
	grid      *dp.Grid[S]
	a, b      *seq.Sequence
	chunkSize int
}

// New builds an Engine over a, b and their filled grid.
func New[S dp.Numeric](grid *dp.Grid[S], a, b *seq.Sequence) *Engine[S] {
	return &Engine[S]{grid: grid, a: a, b: b, chunkSize: ChunkSize}
}

// Stream enumerates every co-optimal alignment, delivering them in
// chunks of at most ChunkSize over the returned channel. The producer
// goroutine blocks between chunks until the consumer receives (or ctx
// is cancelled), implementing the spec's cooperative-pull backpressure.
// The channel is closed when enumeration completes or ctx is cancelled.
func (e *Engine[S]) Stream(ctx context.Context) <-chan []Alignment {
	out := make(chan []Alignment)

	go func() {
		defer close(out)

		chunk := make([]Alignment, 0, e.chunkSize)
		emit := func(al Alignment) bool {
			chunk = append(chunk, al)
			if len(chunk) < e.chunkSize {
				return true
			}
			toSend := chunk
			chunk = make([]Alignment, 0, e.chunkSize)
			select {
			case out <- toSend:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for _, sc := range e.grid.StartCells() {
			if !e.walk(sc.Matrix, sc.I, sc.J, nil, emit) {
				return
			}
		}

		if len(chunk) > 0 {
			select {
			case out <- chunk:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

// All drains Stream into a single slice. Intended for small grids and
// tests; production callers should consume Stream directly to honor
// the chunked-memory contract.
func (e *Engine[S]) All(ctx context.Context) []Alignment {
	var all []Alignment
	for chunk := range e.Stream(ctx) {
		all = append(all, chunk...)
	}
	return all
}

// walk performs one DFS step from (mat, i, j) with node as the
// accumulated path so far. It returns false if emit signalled to stop
// (consumer gone, or context cancelled) and the caller should unwind.
func (e *Engine[S]) walk(mat dp.Matrix, i, j int, node *pathNode, emit func(Alignment) bool) bool {
	cell := e.grid.Cell(mat, i, j)
	pointers := cell.Pointers

	// Global boundary gap cells store no pointers; their gap run
	// continues along the boundary until M[0][0].
	if e.grid.Mode() == dp.Global && len(pointers) == 0 {
		switch {
		case mat == dp.Ix && i == 0 && j > 1:
			pointers = dp.PointerSet{dp.Ix}
		case mat == dp.Iy && j == 0 && i > 1:
			pointers = dp.PointerSet{dp.Iy}
		case (mat == dp.Ix && i == 0 && j == 1) || (mat == dp.Iy && j == 0 && i == 1):
			pointers = dp.PointerSet{dp.M}
		}
	}

	if len(pointers) == 0 {
		return emit(materialize(node))
	}

	var aCh, bCh rune
	var ni, nj int

	switch mat {
	case dp.M:
		aCh, bCh = e.a.At(i), e.b.At(j)
		ni, nj = i-1, j-1
	case dp.Ix:
		aCh, bCh = '_', e.b.At(j)
		ni, nj = i, j-1
	case dp.Iy:
		aCh, bCh = e.a.At(i), '_'
		ni, nj = i-1, j
	}

	next := &pathNode{parent: node, aCh: aCh, bCh: bCh}

	for _, pred := range pointers {
		if !e.walk(pred, ni, nj, next, emit) {
			return false
		}
	}
	return true
}

// materialize renders a path by walking its cons chain. The chain is
// built newest-step-first from the terminal cell outward but the
// newest step always corresponds to the lowest (i, j) — the leftmost
// position in the final alignment — so walking parent pointers from
// the terminal node yields the alignment already in left-to-right
// order.
func materialize(node *pathNode) Alignment {
	var aRunes, bRunes []rune
	for n := node; n != nil; n = n.parent {
		aRunes = append(aRunes, n.aCh)
		bRunes = append(bRunes, n.bCh)
	}
	return Alignment{A: string(aRunes), B: string(bRunes)}
}
