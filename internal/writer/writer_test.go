package writer

import (
	"bufio"
	"bytes"
	"context"
	"testing"

	"github.com/aria-lang/coalign-go/internal/traceback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "4", FormatScore(4.0))
	assert.Equal(t, "2.5", FormatScore(2.5))
	assert.Equal(t, "4", FormatScore(4))
	assert.Equal(t, "-3", FormatScore(-3))
}

func TestStreamWritesFormatAndFlushesPerChunk(t *testing.T) {
	ch := make(chan []traceback.Alignment, 2)
	ch <- []traceback.Alignment{{A: "ACGT", B: "ACGT"}}
	ch <- []traceback.Alignment{{A: "AC_T", B: "ACGT"}}
	close(ch)

	var buf bytes.Buffer
	err := Stream(context.Background(), &buf, 4.0, ch)
	require.NoError(t, err)

	expected := "4\n\nACGT\nACGT\n\nAC_T\nACGT\n"
	assert.Equal(t, expected, buf.String())
}

func TestStreamRespectsCancellation(t *testing.T) {
	ch := make(chan []traceback.Alignment)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Stream(ctx, &buf, 1.0, ch)
	require.Error(t, err)
}

func TestWriteChunkFlushesChunk(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	err := WriteChunk(w, []traceback.Alignment{{A: "A_", B: "AT"}})
	require.NoError(t, err)
	assert.Equal(t, "\nA_\nAT\n", buf.String())
}
