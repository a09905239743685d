package subst

import (
	"testing"

	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/aria-lang/coalign-go/internal/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityEntries(alpha []rune, match, mismatch float64) []Entry[float64] {
	var entries []Entry[float64]
	for ia, ca := range alpha {
		for ib, cb := range alpha {
			s := mismatch
			if ca == cb {
				s = match
			}
			entries = append(entries, Entry[float64]{IA: ia, IB: ib, CA: ca, CB: cb, Score: s})
		}
	}
	return entries
}

func TestFromEntries(t *testing.T) {
	alphaA, err := seq.NewAlphabet([]rune("ACGT"))
	require.NoError(t, err)
	alphaB, err := seq.NewAlphabet([]rune("ACGT"))
	require.NoError(t, err)

	t.Run("complete identity table", func(t *testing.T) {
		table, err := FromEntries(alphaA, alphaB, identityEntries([]rune("ACGT"), 1, -1))
		require.NoError(t, err)

		v, err := table.ScoreOf('A', 'A')
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)

		v, err = table.ScoreOf('A', 'C')
		require.NoError(t, err)
		assert.Equal(t, -1.0, v)
	})

	t.Run("mismatched character rejected", func(t *testing.T) {
		entries := identityEntries([]rune("ACGT"), 1, -1)
		entries[0].CA = 'X'
		_, err := FromEntries(alphaA, alphaB, entries)
		require.Error(t, err)
		assert.IsType(t, &coerr.InvalidSubstitutionEntryError{}, err)
	})

	t.Run("incomplete table rejected", func(t *testing.T) {
		entries := identityEntries([]rune("ACGT"), 1, -1)
		entries = entries[:len(entries)-1]
		_, err := FromEntries(alphaA, alphaB, entries)
		require.Error(t, err)
		assert.IsType(t, &coerr.InvalidSubstitutionEntryError{}, err)
	})

	t.Run("unknown pair lookup", func(t *testing.T) {
		table, err := FromEntries(alphaA, alphaB, identityEntries([]rune("ACGT"), 1, -1))
		require.NoError(t, err)

		_, err = table.ScoreOf('A', 'Z')
		require.Error(t, err)
		assert.IsType(t, &coerr.UnknownSymbolPairError{}, err)
	})
}

func TestTransposed(t *testing.T) {
	alphaA, err := seq.NewAlphabet([]rune("AU"))
	require.NoError(t, err)
	alphaB, err := seq.NewAlphabet([]rune("GC"))
	require.NoError(t, err)

	entries := []Entry[float64]{
		{IA: 0, IB: 0, CA: 'A', CB: 'G', Score: 1},
		{IA: 0, IB: 1, CA: 'A', CB: 'C', Score: 2},
		{IA: 1, IB: 0, CA: 'U', CB: 'G', Score: 3},
		{IA: 1, IB: 1, CA: 'U', CB: 'C', Score: 4},
	}
	table, err := FromEntries(alphaA, alphaB, entries)
	require.NoError(t, err)

	transposed := table.Transposed()
	v, err := transposed.ScoreOf('G', 'A')
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = transposed.ScoreOf('C', 'U')
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}
