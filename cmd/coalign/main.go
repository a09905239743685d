// Command coalign computes pairwise sequence alignments and prints
// every co-optimal alignment found.
//
// Usage:
//
//	coalign <input-file> <output-file>
//
// The invocation is fixed to exactly two positional arguments (spec.md
// §6); there is no flag surface, unlike the teacher's multi-command
// bioflow CLI, because the spec pins the contract down completely.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aria-lang/coalign-go/internal/align"
	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/aria-lang/coalign-go/internal/parser"
	"github.com/aria-lang/coalign-go/internal/score"
	"github.com/aria-lang/coalign-go/internal/writer"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: coalign <input-file> <output-file>")
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "coalign:", err)
		os.Exit(exitCodeFor(err))
	}
}

func run(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return &coerr.IoFailureError{Op: "open input file", Cause: err}
	}
	defer in.Close()

	req, err := parser.Parse(in)
	if err != nil {
		return err
	}

	driver, err := align.Run(align.Request[float64]{
		A:        req.A,
		B:        req.B,
		Table:    req.Table,
		GapModel: req.GapModel,
		Mode:     req.Mode,
		Kernel:   score.New[float64](),
	})
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return &coerr.IoFailureError{Op: "create output file", Cause: err}
	}
	defer out.Close()

	best, _ := driver.BestScore()
	ctx := context.Background()
	if err := writer.Stream(ctx, out, best, driver.Stream(ctx)); err != nil {
		return &coerr.IoFailureError{Op: "write output file", Cause: err}
	}

	return nil
}

// exitCodeFor maps each of the seven spec.md §7 error kinds to a
// distinct non-zero exit code; any other error, UnknownSymbolPairError
// included, exits 1.
func exitCodeFor(err error) int {
	var ioErr *coerr.IoFailureError
	var missing *coerr.InputMissingError
	var malformed *coerr.InputMalformedError
	var unknownSym *coerr.UnknownSymbolError
	var invalidSubst *coerr.InvalidSubstitutionEntryError
	var invalidGap *coerr.InvalidGapPenaltyError
	var unknownMode *coerr.UnknownModeError

	switch {
	case errors.As(err, &missing):
		return 10
	case errors.As(err, &malformed):
		return 11
	case errors.As(err, &unknownSym):
		return 12
	case errors.As(err, &invalidSubst):
		return 13
	case errors.As(err, &invalidGap):
		return 14
	case errors.As(err, &unknownMode):
		return 15
	case errors.As(err, &ioErr):
		return 16
	default:
		return 1
	}
}
