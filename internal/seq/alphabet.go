// Package seq provides alphabet-indexed sequence types for the
// alignment engine.
//
// Unlike the teacher's internal/sequence package, which hard-codes DNA
// and RNA bases, an alphabet here is an arbitrary ordered set of
// symbols supplied by the caller (§3: "A and B each carry their own
// alphabet; alphabets may differ"). Validation still happens at
// construction time, in the same runtime-checks-replace-contracts
// spirit as the teacher's sequence.New.
package seq

import (
	"fmt"

	"github.com/aria-lang/coalign-go/internal/coerr"
)

// Alphabet is an ordered, finite set of symbols with unique positions.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from its symbols in declaration order.
func NewAlphabet(symbols []rune) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, &coerr.InputMissingError{Field: "alphabet"}
	}

	index := make(map[rune]int, len(symbols))
	for i, s := range symbols {
		if _, dup := index[s]; dup {
			return nil, &coerr.InputMalformedError{Reason: fmt.Sprintf("duplicate alphabet symbol %q", s)}
		}
		index[s] = i
	}

	cp := make([]rune, len(symbols))
	copy(cp, symbols)
	return &Alphabet{symbols: cp, index: index}, nil
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int { return len(a.symbols) }

// At returns the symbol at the given 0-based position.
func (a *Alphabet) At(pos int) (rune, bool) {
	if pos < 0 || pos >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[pos], true
}

// PositionOf returns the 0-based position of a symbol, if present.
func (a *Alphabet) PositionOf(symbol rune) (int, bool) {
	pos, ok := a.index[symbol]
	return pos, ok
}

// Contains reports whether symbol belongs to the alphabet.
func (a *Alphabet) Contains(symbol rune) bool {
	_, ok := a.index[symbol]
	return ok
}

// Symbols returns the alphabet's symbols in declaration order. The
// returned slice is a copy; callers may not mutate the alphabet
// through it.
func (a *Alphabet) Symbols() []rune {
	cp := make([]rune, len(a.symbols))
	copy(cp, a.symbols)
	return cp
}
