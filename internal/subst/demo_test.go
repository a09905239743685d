package subst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDNARNAIdentity(t *testing.T) {
	table, dna, rna, err := DNARNAIdentity(1, -1)
	require.NoError(t, err)

	assert.Equal(t, 4, dna.Len())
	assert.Equal(t, 4, rna.Len())

	s, err := table.ScoreOf('A', 'A')
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)

	s, err = table.ScoreOf('T', 'U')
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)

	s, err = table.ScoreOf('G', 'C')
	require.NoError(t, err)
	assert.Equal(t, -1.0, s)
}
