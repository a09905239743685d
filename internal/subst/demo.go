package subst

import "github.com/aria-lang/coalign-go/internal/seq"

// DNARNAIdentity builds a cross-alphabet identity table between a DNA
// alphabet ("ACGT") and an RNA alphabet ("ACGU"), scoring matches as
// match and everything else as mismatch, with U and T additionally
// treated as equivalent (spec.md §8, S6). This demonstrates the engine
// running over two distinct alphabets, generalizing the teacher's
// DNA/RNA SequenceType distinction (internal/sequence.SequenceType)
// from a tag on one sequence type to a genuine two-alphabet alignment.
func DNARNAIdentity(match, mismatch float64) (*Table[float64], *seq.Alphabet, *seq.Alphabet, error) {
	dna, err := seq.NewAlphabet([]rune("ACGT"))
	if err != nil {
		return nil, nil, nil, err
	}
	rna, err := seq.NewAlphabet([]rune("ACGU"))
	if err != nil {
		return nil, nil, nil, err
	}

	var entries []Entry[float64]
	for ia, ca := range dna.Symbols() {
		for ib, cb := range rna.Symbols() {
			s := mismatch
			if ca == cb || (ca == 'T' && cb == 'U') {
				s = match
			}
			entries = append(entries, Entry[float64]{IA: ia, IB: ib, CA: ca, CB: cb, Score: s})
		}
	}

	table, err := FromEntries(dna, rna, entries)
	if err != nil {
		return nil, nil, nil, err
	}
	return table, dna, rna, nil
}
