package seq

import (
	"testing"

	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet(t *testing.T) {
	t.Run("valid alphabet", func(t *testing.T) {
		a, err := NewAlphabet([]rune("ACGT"))
		require.NoError(t, err)
		assert.Equal(t, 4, a.Len())
		pos, ok := a.PositionOf('G')
		assert.True(t, ok)
		assert.Equal(t, 2, pos)
	})

	t.Run("empty alphabet rejected", func(t *testing.T) {
		_, err := NewAlphabet(nil)
		require.Error(t, err)
		assert.IsType(t, &coerr.InputMissingError{}, err)
	})

	t.Run("duplicate symbol rejected", func(t *testing.T) {
		_, err := NewAlphabet([]rune("AACG"))
		require.Error(t, err)
		assert.IsType(t, &coerr.InputMalformedError{}, err)
	})
}

func TestNewSequence(t *testing.T) {
	alphabet, err := NewAlphabet([]rune("ACGT"))
	require.NoError(t, err)

	t.Run("valid sequence", func(t *testing.T) {
		s, err := New(alphabet, []rune("ACGT"), "A")
		require.NoError(t, err)
		assert.Equal(t, 4, s.Len())
		assert.Equal(t, 'A', s.At(1))
		assert.Equal(t, 'T', s.At(4))
	})

	t.Run("unknown symbol rejected", func(t *testing.T) {
		_, err := New(alphabet, []rune("ACGX"), "B")
		require.Error(t, err)
		var unknown *coerr.UnknownSymbolError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, 'X', unknown.Symbol)
		assert.Equal(t, "B", unknown.Side)
		assert.Equal(t, 3, unknown.Position)
	})

	t.Run("empty sequence is valid", func(t *testing.T) {
		s, err := New(alphabet, nil, "A")
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})
}
