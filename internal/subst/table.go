// Package subst provides the substitution table (C2): a complete
// mapping from a (symbol-from-A, symbol-from-B) pair to a score.
//
// Aria equivalent:
//
//	struct SubstTable
//	  scores: Map<(Char, Char), Float>
//	  invariant self.scores.is_complete_over(alphabet_a, alphabet_b)
package subst

import (
	"fmt"

	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/aria-lang/coalign-go/internal/score"
	"github.com/aria-lang/coalign-go/internal/seq"
)

// Entry is one (ia, ib, ca, cb, score) quintuple as read from the input
// format (§6, lines 9+).
type Entry[S score.Numeric] struct {
	IA, IB int
	CA, CB rune
	Score  S
}

type pairKey struct{ a, b rune }

// Table maps a (symbol-from-A, symbol-from-B) pair to a substitution score.
type Table[S score.Numeric] struct {
	scores map[pairKey]S
}

// FromEntries validates each quintuple against the declared alphabets
// (InvalidSubstitutionEntry on mismatch), checks the table is complete
// over the full alphabet product (InvalidSubstitutionEntry if any pair
// is missing), and builds a Table.
func FromEntries[S score.Numeric](alphaA, alphaB *seq.Alphabet, entries []Entry[S]) (*Table[S], error) {
	scores := make(map[pairKey]S, len(entries))

	for _, e := range entries {
		ca, ok := alphaA.At(e.IA)
		if !ok || ca != e.CA {
			return nil, &coerr.InvalidSubstitutionEntryError{
				Reason: fmt.Sprintf("entry (ia=%d, ca=%q) does not match alphabet A", e.IA, e.CA),
			}
		}
		cb, ok := alphaB.At(e.IB)
		if !ok || cb != e.CB {
			return nil, &coerr.InvalidSubstitutionEntryError{
				Reason: fmt.Sprintf("entry (ib=%d, cb=%q) does not match alphabet B", e.IB, e.CB),
			}
		}
		scores[pairKey{e.CA, e.CB}] = e.Score
	}

	for ia := 0; ia < alphaA.Len(); ia++ {
		ca, _ := alphaA.At(ia)
		for ib := 0; ib < alphaB.Len(); ib++ {
			cb, _ := alphaB.At(ib)
			if _, ok := scores[pairKey{ca, cb}]; !ok {
				return nil, &coerr.InvalidSubstitutionEntryError{
					Reason: fmt.Sprintf("missing entry for pair (%q, %q)", ca, cb),
				}
			}
		}
	}

	return &Table[S]{scores: scores}, nil
}

// ScoreOf returns the substitution score for (ca, cb), or
// UnknownSymbolPairError if no such pair was loaded.
func (t *Table[S]) ScoreOf(ca, cb rune) (S, error) {
	v, ok := t.scores[pairKey{ca, cb}]
	if !ok {
		var zero S
		return zero, &coerr.UnknownSymbolPairError{A: ca, B: cb}
	}
	return v, nil
}

// Transposed returns the table with A and B roles swapped: score'(cb,
// ca) = score(ca, cb). Used by the A/B swap symmetry property
// (spec.md §8, property 5).
func (t *Table[S]) Transposed() *Table[S] {
	out := make(map[pairKey]S, len(t.scores))
	for k, v := range t.scores {
		out[pairKey{k.b, k.a}] = v
	}
	return &Table[S]{scores: out}
}
