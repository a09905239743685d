// Package writer implements the output writer (C8): it renders the
// best score followed by each chunk of co-optimal alignments in the
// textual format of spec.md §6, flushing after every chunk so the
// traceback engine's backpressure contract holds end to end.
//
// Mirrors the teacher's WriteFASTA/ToFASTA buffered-write-per-record
// style (one bufio.Writer, flushed at well-defined boundaries) rather
// than building the whole output in memory.
package writer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aria-lang/coalign-go/internal/dp"
	"github.com/aria-lang/coalign-go/internal/traceback"
)

// FormatScore renders a scoring value in its natural textual form:
// full-precision decimal for floating-point kinds, plain decimal for
// integer kinds (spec.md §6, "printed using the scoring type's natural
// textual form").
func FormatScore[S dp.Numeric](v S) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// WriteScore writes the best score line and flushes. The blank line
// before each alignment pair is written by WriteChunk.
func WriteScore[S dp.Numeric](w *bufio.Writer, best S) error {
	if _, err := fmt.Fprintln(w, FormatScore(best)); err != nil {
		return err
	}
	return w.Flush()
}

// WriteChunk writes one chunk of alignments, each preceded by a blank
// line, and flushes once the chunk is fully written.
func WriteChunk(w *bufio.Writer, chunk []traceback.Alignment) error {
	for _, al := range chunk {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, al.A); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, al.B); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Stream writes a best score followed by every chunk pulled from ch,
// in order, flushing after each chunk. It stops early if ctx is
// cancelled.
func Stream[S dp.Numeric](ctx context.Context, dst io.Writer, best S, ch <-chan []traceback.Alignment) error {
	w := bufio.NewWriter(dst)
	if err := WriteScore(w, best); err != nil {
		return err
	}

	for {
		select {
		case chunk, ok := <-ch:
			if !ok {
				return nil
			}
			if err := WriteChunk(w, chunk); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
