package seq

import "github.com/aria-lang/coalign-go/internal/coerr"

// Sequence is an ordered list of symbols drawn from an Alphabet.
//
// Aria equivalent:
//
//	struct Sequence
//	  alphabet: Alphabet
//	  symbols: [Char]
//	  invariant self.symbols.all(|c| self.alphabet.contains(c))
type Sequence struct {
	Alphabet *Alphabet
	Symbols  []rune
}

// New validates every symbol against the alphabet and builds a Sequence.
// side is used only to annotate UnknownSymbolError ("A" or "B").
func New(alphabet *Alphabet, symbols []rune, side string) (*Sequence, error) {
	for i, s := range symbols {
		if !alphabet.Contains(s) {
			return nil, &coerr.UnknownSymbolError{Symbol: s, Side: side, Position: i}
		}
	}
	cp := make([]rune, len(symbols))
	copy(cp, symbols)
	return &Sequence{Alphabet: alphabet, Symbols: cp}, nil
}

// Len returns the number of symbols in the sequence.
func (s *Sequence) Len() int { return len(s.Symbols) }

// At returns the 1-based symbol at position i, matching the DP grid's
// 1-based indexing convention (§3).
func (s *Sequence) At(i int) rune { return s.Symbols[i-1] }

// String returns the raw symbol string.
func (s *Sequence) String() string { return string(s.Symbols) }
