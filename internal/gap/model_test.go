package gap

import (
	"testing"

	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid penalties", func(t *testing.T) {
		m, err := New(2.0, 1.0, 2.0, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 2.0, m.OpenX())
		assert.Equal(t, 1.0, m.ExtendX())
		assert.Equal(t, 2.0, m.OpenY())
		assert.Equal(t, 1.0, m.ExtendY())
	})

	t.Run("negative penalty rejected", func(t *testing.T) {
		_, err := New(-1.0, 1.0, 2.0, 1.0)
		require.Error(t, err)
		var invalid *coerr.InvalidGapPenaltyError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "dx", invalid.Field)
	})

	t.Run("zero penalties allowed", func(t *testing.T) {
		_, err := New(0.0, 0.0, 0.0, 0.0)
		require.NoError(t, err)
	})
}

func TestSwapped(t *testing.T) {
	m, err := New(2.0, 1.0, 3.0, 1.5)
	require.NoError(t, err)

	s := m.Swapped()
	assert.Equal(t, 3.0, s.Dx)
	assert.Equal(t, 1.5, s.Ex)
	assert.Equal(t, 2.0, s.Dy)
	assert.Equal(t, 1.0, s.Ey)
}
