package seqio

import (
	"strings"
	"testing"

	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/aria-lang/coalign-go/internal/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dnaAlphabet(t *testing.T) *seq.Alphabet {
	t.Helper()
	alpha, err := seq.NewAlphabet([]rune("ACGT"))
	require.NoError(t, err)
	return alpha
}

func TestParseFASTARecords(t *testing.T) {
	input := ">seq1 first\nACGT\nACGT\n>seq2 second\nTTTT\n"
	ids, bases, err := ParseFASTARecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"seq1 first", "seq2 second"}, ids)
	require.Equal(t, []string{"ACGTACGT", "TTTT"}, bases)
}

func TestParseFASTARecordsIgnoresBlankLines(t *testing.T) {
	input := ">seq1\nAC\n\nGT\n"
	_, bases, err := ParseFASTARecords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT"}, bases)
}

func TestParseFASTARecordsRejectsDataBeforeHeader(t *testing.T) {
	input := "ACGT\n>seq1\nACGT\n"
	_, _, err := ParseFASTARecords(strings.NewReader(input))
	require.Error(t, err)
	var malformed *coerr.InputMalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestFromFASTAPairHappyPath(t *testing.T) {
	alpha := dnaAlphabet(t)
	input := ">a\nACGT\n>b\nACTT\n"

	a, b, err := FromFASTAPair(strings.NewReader(input), alpha, alpha)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", a.String())
	assert.Equal(t, "ACTT", b.String())
}

func TestFromFASTAPairRejectsWrongRecordCount(t *testing.T) {
	alpha := dnaAlphabet(t)
	input := ">a\nACGT\n>b\nACTT\n>c\nGGGG\n"

	_, _, err := FromFASTAPair(strings.NewReader(input), alpha, alpha)
	require.Error(t, err)
	var malformed *coerr.InputMalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestFromFASTAPairRejectsUnknownSymbol(t *testing.T) {
	alpha := dnaAlphabet(t)
	input := ">a\nACGU\n>b\nACGT\n"

	_, _, err := FromFASTAPair(strings.NewReader(input), alpha, alpha)
	require.Error(t, err)
	var unknown *coerr.UnknownSymbolError
	require.ErrorAs(t, err, &unknown)
}
