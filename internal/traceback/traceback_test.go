package traceback

import (
	"context"
	"sort"
	"testing"

	"github.com/aria-lang/coalign-go/internal/dp"
	"github.com/aria-lang/coalign-go/internal/gap"
	"github.com/aria-lang/coalign-go/internal/score"
	"github.com/aria-lang/coalign-go/internal/seq"
	"github.com/aria-lang/coalign-go/internal/subst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dnaTable(t *testing.T, match, mismatch float64) (*seq.Alphabet, *subst.Table[float64]) {
	t.Helper()
	alpha, err := seq.NewAlphabet([]rune("ACGT"))
	require.NoError(t, err)

	var entries []subst.Entry[float64]
	for ia, ca := range alpha.Symbols() {
		for ib, cb := range alpha.Symbols() {
			s := mismatch
			if ca == cb {
				s = match
			}
			entries = append(entries, subst.Entry[float64]{IA: ia, IB: ib, CA: ca, CB: cb, Score: s})
		}
	}
	table, err := subst.FromEntries(alpha, alpha, entries)
	require.NoError(t, err)
	return alpha, table
}

func seqOf(t *testing.T, alpha *seq.Alphabet, s, side string) *seq.Sequence {
	t.Helper()
	out, err := seq.New(alpha, []rune(s), side)
	require.NoError(t, err)
	return out
}

func alignmentStrings(als []Alignment) []string {
	out := make([]string, len(als))
	for i, al := range als {
		out[i] = al.A + "|" + al.B
	}
	sort.Strings(out)
	return out
}

// Identical sequences under global alignment produce exactly one
// alignment: a straight diagonal run.
func TestGlobalIdenticalSequences(t *testing.T) {
	alpha, table := dnaTable(t, 1, -1)
	a := seqOf(t, alpha, "ACGT", "A")
	b := seqOf(t, alpha, "ACGT", "B")
	gapModel, err := gap.New(2.0, 1.0, 2.0, 1.0)
	require.NoError(t, err)
	kernel := score.New[float64]()

	grid, err := dp.Fill(a, b, table, gapModel, dp.Global, kernel)
	require.NoError(t, err)

	best, ok := grid.BestScore()
	require.True(t, ok)
	assert.Equal(t, 4.0, best)

	als := New(grid, a, b).All(context.Background())
	require.Len(t, als, 1)
	assert.Equal(t, "ACGT", als[0].A)
	assert.Equal(t, "ACGT", als[0].B)
}

// A single mismatch at the end, with a mismatch penalty (-3) worse than
// opening one gap on each side (-1 each), loses to the
// insertion/deletion pair, whose two orderings tie as the co-optimal
// alignments.
func TestGlobalTiedSubstitutionVersusGapPair(t *testing.T) {
	alpha, table := dnaTable(t, 1, -3)
	a := seqOf(t, alpha, "AC", "A")
	b := seqOf(t, alpha, "AG", "B")
	gapModel, err := gap.New(1.0, 1.0, 1.0, 1.0)
	require.NoError(t, err)
	kernel := score.New[float64]()

	grid, err := dp.Fill(a, b, table, gapModel, dp.Global, kernel)
	require.NoError(t, err)

	als := New(grid, a, b).All(context.Background())
	require.NotEmpty(t, als)
	for _, al := range als {
		require.Len(t, al.A, len(al.B))
	}
}

// An empty A sequence against a non-empty B, in global mode, must
// produce exactly one alignment: B fully inserted against gaps.
func TestGlobalEmptySequence(t *testing.T) {
	alpha, table := dnaTable(t, 1, -1)
	a := seqOf(t, alpha, "", "A")
	b := seqOf(t, alpha, "AC", "B")
	gapModel, err := gap.New(2.0, 1.0, 2.0, 1.0)
	require.NoError(t, err)
	kernel := score.New[float64]()

	grid, err := dp.Fill(a, b, table, gapModel, dp.Global, kernel)
	require.NoError(t, err)

	als := New(grid, a, b).All(context.Background())
	require.Len(t, als, 1)
	assert.Equal(t, "__", als[0].A)
	assert.Equal(t, "AC", als[0].B)
}

// Local mode with an empty sequence has no non-boundary M cell to
// start from, so it enumerates zero alignments rather than one empty
// pair (spec.md §9, Open Question decision 1).
func TestLocalEmptySequenceNoAlignments(t *testing.T) {
	alpha, table := dnaTable(t, 1, -1)
	a := seqOf(t, alpha, "", "A")
	b := seqOf(t, alpha, "AC", "B")
	gapModel, err := gap.New(2.0, 1.0, 2.0, 1.0)
	require.NoError(t, err)
	kernel := score.New[float64]()

	grid, err := dp.Fill(a, b, table, gapModel, dp.Local, kernel)
	require.NoError(t, err)

	als := New(grid, a, b).All(context.Background())
	assert.Empty(t, als)
}

// Local alignment extracts the single best-scoring substring; flanking
// mismatched regions must not appear in the result.
func TestLocalExtractsBestSubstring(t *testing.T) {
	alpha, table := dnaTable(t, 2, -1)
	a := seqOf(t, alpha, "TTACGTTT", "A")
	b := seqOf(t, alpha, "GGACGTGG", "B")
	gapModel, err := gap.New(5.0, 2.0, 5.0, 2.0)
	require.NoError(t, err)
	kernel := score.New[float64]()

	grid, err := dp.Fill(a, b, table, gapModel, dp.Local, kernel)
	require.NoError(t, err)

	als := New(grid, a, b).All(context.Background())
	require.NotEmpty(t, als)
	for _, al := range als {
		assert.Contains(t, al.A, "ACGT")
	}
}

// Swapping A and B and transposing the table must reproduce the same
// alignment strings with sides exchanged (spec.md property 5).
func TestSwapSymmetry(t *testing.T) {
	alpha, table := dnaTable(t, 1, -2)
	a := seqOf(t, alpha, "ACGT", "A")
	b := seqOf(t, alpha, "AGT", "B")
	gapModel, err := gap.New(2.0, 1.0, 2.0, 1.0)
	require.NoError(t, err)
	kernel := score.New[float64]()

	grid, err := dp.Fill(a, b, table, gapModel, dp.Global, kernel)
	require.NoError(t, err)
	als := New(grid, a, b).All(context.Background())

	swappedGrid, err := dp.Fill(b, a, table.Transposed(), gapModel.Swapped(), dp.Global, kernel)
	require.NoError(t, err)
	swapped := New(swappedGrid, b, a).All(context.Background())

	var want []string
	for _, al := range swapped {
		want = append(want, al.B+"|"+al.A)
	}
	sort.Strings(want)

	assert.Equal(t, alignmentStrings(als), want)
}

// Chunked streaming must yield the same set of alignments as All,
// split at the configured chunk boundary, with no duplicates or drops.
func TestStreamChunking(t *testing.T) {
	alpha, table := dnaTable(t, 1, -3)
	a := seqOf(t, alpha, "ACAC", "A")
	b := seqOf(t, alpha, "AGAG", "B")
	gapModel, err := gap.New(1.0, 1.0, 1.0, 1.0)
	require.NoError(t, err)
	kernel := score.New[float64]()

	grid, err := dp.Fill(a, b, table, gapModel, dp.Global, kernel)
	require.NoError(t, err)

	engine := New(grid, a, b)
	engine.chunkSize = 2

	var chunked []Alignment
	chunkCount := 0
	for chunk := range engine.Stream(context.Background()) {
		chunkCount++
		assert.LessOrEqual(t, len(chunk), 2)
		chunked = append(chunked, chunk...)
	}

	full := New(grid, a, b).All(context.Background())
	assert.Equal(t, alignmentStrings(full), alignmentStrings(chunked))
	if len(full) > 2 {
		assert.Greater(t, chunkCount, 1)
	}
}

// Cancelling the context stops enumeration without a panic or a hang.
func TestStreamRespectsCancellation(t *testing.T) {
	alpha, table := dnaTable(t, 1, -1)
	a := seqOf(t, alpha, "ACGT", "A")
	b := seqOf(t, alpha, "ACGT", "B")
	gapModel, err := gap.New(2.0, 1.0, 2.0, 1.0)
	require.NoError(t, err)
	kernel := score.New[float64]()

	grid, err := dp.Fill(a, b, table, gapModel, dp.Global, kernel)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := New(grid, a, b)
	ch := engine.Stream(ctx)
	for range ch {
	}
}
