// Package parser implements the input parser (C7): a line-oriented
// reader for the fixed eight-line header plus substitution-entry body
// format of spec.md §6.
//
// Grounded on the teacher's bioflow.ParseFASTA / ParseFASTQ style: a
// bufio.Scanner walked line by line with an explicit per-line state
// machine and errors wrapped with context about the failing line.
// Unlike FASTA's self-delimiting record markers, this format's line
// meanings are positional, so the state machine here is a line counter
// rather than a sigil switch.
//
// The scoring type is fixed to float64: the file format's "natural
// textual form" for arbitrary S would require per-instantiation parse
// functions with no text-format guidance from spec.md beyond the
// float64 literals used throughout §8's scenarios, so the parser
// targets the common case and callers needing another Numeric
// instantiation build a Request by hand.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/aria-lang/coalign-go/internal/dp"
	"github.com/aria-lang/coalign-go/internal/gap"
	"github.com/aria-lang/coalign-go/internal/seq"
	"github.com/aria-lang/coalign-go/internal/subst"
)

// Request is everything the align driver needs, as read from the file
// format (alphabets and gap penalties resolved, but no score kernel —
// callers attach one, typically score.New[float64]()).
type Request struct {
	A        *seq.Sequence
	B        *seq.Sequence
	Mode     dp.Mode
	GapModel *gap.Model[float64]
	Table    *subst.Table[float64]
}

// reader tracks the current line number across a single parse so every
// error can name the offending line.
type reader struct {
	scanner *bufio.Scanner
	lineNum int
}

func (r *reader) next(field string) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", &coerr.IoFailureError{Op: "read " + field, Cause: err}
		}
		return "", &coerr.InputMissingError{Field: field}
	}
	r.lineNum++
	return strings.TrimRight(r.scanner.Text(), " \t\r"), nil
}

func (r *reader) malformed(reason string) error {
	return &coerr.InputMalformedError{Line: r.lineNum, Reason: reason}
}

// Parse reads one request from r per spec.md §6.
func Parse(src io.Reader) (*Request, error) {
	r := &reader{scanner: bufio.NewScanner(src)}
	r.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rawA, err := r.next("sequence A")
	if err != nil {
		return nil, err
	}
	rawB, err := r.next("sequence B")
	if err != nil {
		return nil, err
	}

	modeLine, err := r.next("mode")
	if err != nil {
		return nil, err
	}
	mode, err := parseMode(modeLine)
	if err != nil {
		return nil, err
	}

	gapLine, err := r.next("gap penalties")
	if err != nil {
		return nil, err
	}
	dx, ex, dy, ey, err := r.parseGapLine(gapLine)
	if err != nil {
		return nil, err
	}
	gapModel, err := gap.New(dx, ex, dy, ey)
	if err != nil {
		return nil, err
	}

	alphaA, err := r.parseAlphabet("alphabet A size", "alphabet A")
	if err != nil {
		return nil, err
	}
	alphaB, err := r.parseAlphabet("alphabet B size", "alphabet B")
	if err != nil {
		return nil, err
	}

	a, err := seq.New(alphaA, []rune(rawA), "A")
	if err != nil {
		return nil, err
	}
	b, err := seq.New(alphaB, []rune(rawB), "B")
	if err != nil {
		return nil, err
	}

	var entries []subst.Entry[float64]
	for r.scanner.Scan() {
		r.lineNum++
		raw := strings.TrimRight(r.scanner.Text(), " \t\r")
		if raw == "" {
			return nil, r.malformed("blank line in substitution entries")
		}
		entry, err := r.parseEntry(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, &coerr.IoFailureError{Op: "read substitution entries", Cause: err}
	}

	table, err := subst.FromEntries(alphaA, alphaB, entries)
	if err != nil {
		return nil, err
	}

	return &Request{A: a, B: b, Mode: mode, GapModel: gapModel, Table: table}, nil
}

func parseMode(raw string) (dp.Mode, error) {
	switch raw {
	case "0":
		return dp.Global, nil
	case "1":
		return dp.Local, nil
	default:
		return 0, &coerr.UnknownModeError{Value: raw}
	}
}

func (r *reader) parseGapLine(raw string) (dx, ex, dy, ey float64, err error) {
	fields := strings.Fields(raw)
	if len(fields) != 4 {
		return 0, 0, 0, 0, r.malformed(fmt.Sprintf("gap line must have 4 fields, got %d", len(fields)))
	}
	values := make([]float64, 4)
	for i, f := range fields {
		v, parseErr := strconv.ParseFloat(f, 64)
		if parseErr != nil {
			return 0, 0, 0, 0, r.malformed(fmt.Sprintf("gap penalty %q is not numeric", f))
		}
		values[i] = v
	}
	return values[0], values[1], values[2], values[3], nil
}

// parseAlphabet reads the count line then the symbol line.
func (r *reader) parseAlphabet(countField, symbolsField string) (*seq.Alphabet, error) {
	countLine, err := r.next(countField)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || n < 0 {
		return nil, r.malformed(fmt.Sprintf("%s is not a non-negative integer: %q", countField, countLine))
	}

	symbolsLine, err := r.next(symbolsField)
	if err != nil {
		return nil, err
	}
	symbols := []rune(symbolsLine)
	if len(symbols) != n {
		return nil, r.malformed(fmt.Sprintf("%s declared %d symbols but line has %d", symbolsField, n, len(symbols)))
	}

	return seq.NewAlphabet(symbols)
}

func (r *reader) parseEntry(raw string) (subst.Entry[float64], error) {
	fields := strings.Fields(raw)
	if len(fields) != 5 {
		return subst.Entry[float64]{}, r.malformed(fmt.Sprintf("substitution entry must have 5 fields, got %d", len(fields)))
	}

	ia, err := strconv.Atoi(fields[0])
	if err != nil {
		return subst.Entry[float64]{}, r.malformed(fmt.Sprintf("substitution entry index ia is not an integer: %q", fields[0]))
	}
	ib, err := strconv.Atoi(fields[1])
	if err != nil {
		return subst.Entry[float64]{}, r.malformed(fmt.Sprintf("substitution entry index ib is not an integer: %q", fields[1]))
	}
	ca := []rune(fields[2])
	if len(ca) != 1 {
		return subst.Entry[float64]{}, r.malformed(fmt.Sprintf("substitution entry character ca must be one symbol: %q", fields[2]))
	}
	cb := []rune(fields[3])
	if len(cb) != 1 {
		return subst.Entry[float64]{}, r.malformed(fmt.Sprintf("substitution entry character cb must be one symbol: %q", fields[3]))
	}
	score, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return subst.Entry[float64]{}, r.malformed(fmt.Sprintf("substitution entry score is not numeric: %q", fields[4]))
	}

	// ia, ib in the file are 1-based; Entry.IA/IB are 0-based alphabet positions.
	return subst.Entry[float64]{IA: ia - 1, IB: ib - 1, CA: ca[0], CB: cb[0], Score: score}, nil
}
