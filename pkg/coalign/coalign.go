// Package coalign provides a high-level API for co-optimal pairwise
// sequence alignment, the thin re-export facade the teacher's
// pkg/bioflow/bioflow.go offers over its internal packages.
//
// Example usage:
//
//	req, err := coalign.ParseRequest(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	run := coalign.AlignGlobal
//	if req.Mode == coalign.Local {
//	    run = coalign.AlignLocal
//	}
//	driver, err := run(req.A, req.B, req.Table, req.GapModel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	best, _ := driver.BestScore()
//	for _, alignment := range driver.All(context.Background()) {
//	    fmt.Println(alignment.A)
//	    fmt.Println(alignment.B)
//	}
package coalign

import (
	"context"
	"fmt"
	"io"

	"github.com/aria-lang/coalign-go/internal/align"
	"github.com/aria-lang/coalign-go/internal/dp"
	"github.com/aria-lang/coalign-go/internal/gap"
	"github.com/aria-lang/coalign-go/internal/parser"
	"github.com/aria-lang/coalign-go/internal/score"
	"github.com/aria-lang/coalign-go/internal/seq"
	"github.com/aria-lang/coalign-go/internal/seqio"
	"github.com/aria-lang/coalign-go/internal/subst"
	"github.com/aria-lang/coalign-go/internal/writer"
)

// Re-export non-generic types for convenience. The generic types
// (Request, Driver, GapModel, Table) have no Go 1.23 alias form —
// callers reference align.Request[S], gap.Model[S], and subst.Table[S]
// directly, or use the instantiated helpers below.
type (
	Alignment = align.Alignment
	Summary   = align.Summary
	Sequence  = seq.Sequence
	Alphabet  = seq.Alphabet
	Mode      = dp.Mode
)

// Mode constants.
const (
	Global = dp.Global
	Local  = dp.Local
)

// NewAlphabet builds an Alphabet from its symbols in declaration order.
func NewAlphabet(symbols string) (*Alphabet, error) {
	return seq.NewAlphabet([]rune(symbols))
}

// NewSequence validates symbols against alphabet and builds a Sequence.
// side annotates any UnknownSymbolError with "A" or "B".
func NewSequence(alphabet *Alphabet, symbols, side string) (*Sequence, error) {
	return seq.New(alphabet, []rune(symbols), side)
}

// NewGapModel validates and builds an affine gap-cost model.
func NewGapModel[S dp.Numeric](dx, ex, dy, ey S) (*gap.Model[S], error) {
	return gap.New(dx, ex, dy, ey)
}

// NewSubstTable validates and builds a substitution table from its
// quintuples.
func NewSubstTable[S dp.Numeric](alphaA, alphaB *Alphabet, entries []subst.Entry[S]) (*subst.Table[S], error) {
	return subst.FromEntries(alphaA, alphaB, entries)
}

// DNARNAIdentity builds a demo cross-alphabet (DNA/RNA) identity table
// treating U and T as equivalent.
func DNARNAIdentity(match, mismatch float64) (*subst.Table[float64], *Alphabet, *Alphabet, error) {
	return subst.DNARNAIdentity(match, mismatch)
}

// Run builds and fills the DP grid for req, ready to stream results.
func Run[S dp.Numeric](req align.Request[S]) (*align.Driver[S], error) {
	return align.Run(req)
}

// AlignGlobal is a convenience wrapper running a global alignment with
// a default float64 score kernel.
func AlignGlobal(a, b *Sequence, table *subst.Table[float64], gapModel *gap.Model[float64]) (*align.Driver[float64], error) {
	return align.Run(align.Request[float64]{
		A: a, B: b, Table: table, GapModel: gapModel, Mode: Global, Kernel: score.New[float64](),
	})
}

// AlignLocal is a convenience wrapper running a local alignment with a
// default float64 score kernel.
func AlignLocal(a, b *Sequence, table *subst.Table[float64], gapModel *gap.Model[float64]) (*align.Driver[float64], error) {
	return align.Run(align.Request[float64]{
		A: a, B: b, Table: table, GapModel: gapModel, Mode: Local, Kernel: score.New[float64](),
	})
}

// Summarize computes per-alignment statistics: identity fraction,
// match/mismatch/gap counts, and a CIGAR string.
func Summarize(a Alignment) Summary {
	return align.Summarize(a)
}

// ParseRequest reads the line-oriented request format (spec.md §6)
// from r.
func ParseRequest(r io.Reader) (*parser.Request, error) {
	return parser.Parse(r)
}

// FromFASTAPair reads exactly two FASTA records from r, validating
// each against its alphabet.
func FromFASTAPair(r io.Reader, alphaA, alphaB *Alphabet) (a, b *Sequence, err error) {
	return seqio.FromFASTAPair(r, alphaA, alphaB)
}

// ReadFASTAPair opens filename and delegates to FromFASTAPair.
func ReadFASTAPair(filename string, alphaA, alphaB *Alphabet) (a, b *Sequence, err error) {
	return seqio.ReadFASTAPair(filename, alphaA, alphaB)
}

// WriteResult streams the best score followed by every alignment
// chunk from ch to dst, in spec.md §6's output format.
func WriteResult[S dp.Numeric](ctx context.Context, dst io.Writer, best S, ch <-chan []align.Alignment) error {
	return writer.Stream(ctx, dst, best, ch)
}

// Version returns the coalign engine version.
func Version() string {
	return "1.0.0"
}

// Info returns a short description of the engine and its features.
func Info() string {
	return fmt.Sprintf(`coalign v%s - Co-optimal Pairwise Sequence Alignment

A Gotoh three-matrix affine-gap alignment engine that enumerates every
co-optimal alignment between two sequences, not just one optimal path.

Features:
  - Global (Needleman-Wunsch-style) and local (Smith-Waterman-style) modes
  - Affine gap costs with independent open/extend penalties per direction
  - Exhaustive, deterministic enumeration of all co-optimal alignments
  - Chunked, backpressured streaming of results
  - Alignment summary statistics: identity, CIGAR, gap openings
  - FASTA convenience loaders and a line-oriented custom file format
`, Version())
}
