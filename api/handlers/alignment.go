// Package handlers implements the HTTP handlers of the alignment API
// (C10), generalizing the teacher's LocalAlignHandler/GlobalAlignHandler
// JSON request/response shape to the generic co-optimal engine and to
// a streamed NDJSON response instead of one encoded struct.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aria-lang/coalign-go/internal/align"
	"github.com/aria-lang/coalign-go/internal/coerr"
	"github.com/aria-lang/coalign-go/internal/dp"
	"github.com/aria-lang/coalign-go/internal/gap"
	"github.com/aria-lang/coalign-go/internal/score"
	"github.com/aria-lang/coalign-go/internal/seq"
	"github.com/aria-lang/coalign-go/internal/subst"
)

// SubstEntryJSON is the wire form of one substitution-table quintuple.
type SubstEntryJSON struct {
	IA    int     `json:"ia"`
	IB    int     `json:"ib"`
	CA    string  `json:"ca"`
	CB    string  `json:"cb"`
	Score float64 `json:"score"`
}

// AlignmentRequest is the JSON-encoded counterpart of the file format's
// request (spec.md §6), used by POST /api/alignment/run.
type AlignmentRequest struct {
	SequenceA string           `json:"sequence_a"`
	SequenceB string           `json:"sequence_b"`
	Mode      int              `json:"mode"`
	Dx        float64          `json:"dx"`
	Ex        float64          `json:"ex"`
	Dy        float64          `json:"dy"`
	Ey        float64          `json:"ey"`
	AlphabetA string           `json:"alphabet_a"`
	AlphabetB string           `json:"alphabet_b"`
	Entries   []SubstEntryJSON `json:"entries"`
}

// AlignmentResultLine is one line of the streamed NDJSON body: either
// the leading score line or a co-optimal alignment.
type AlignmentResultLine struct {
	Score   *float64 `json:"score,omitempty"`
	A       string   `json:"a,omitempty"`
	B       string   `json:"b,omitempty"`
	Summary *summary `json:"summary,omitempty"`
}

type summary struct {
	Identity    float64 `json:"identity"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	GapOpenings int     `json:"gap_openings"`
	CIGAR       string  `json:"cigar"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	http.Error(w, `{"error": "`+err.Error()+`"}`, status)
}

func buildRequest(body AlignmentRequest) (align.Request[float64], error) {
	var zero align.Request[float64]

	mode, err := modeFromInt(body.Mode)
	if err != nil {
		return zero, err
	}

	alphaA, err := seq.NewAlphabet([]rune(body.AlphabetA))
	if err != nil {
		return zero, err
	}
	alphaB, err := seq.NewAlphabet([]rune(body.AlphabetB))
	if err != nil {
		return zero, err
	}

	entries := make([]subst.Entry[float64], len(body.Entries))
	for i, e := range body.Entries {
		ca := []rune(e.CA)
		cb := []rune(e.CB)
		if len(ca) != 1 || len(cb) != 1 {
			return zero, &coerr.InvalidSubstitutionEntryError{Reason: "ca and cb must each be a single character"}
		}
		entries[i] = subst.Entry[float64]{IA: e.IA, IB: e.IB, CA: ca[0], CB: cb[0], Score: e.Score}
	}
	table, err := subst.FromEntries(alphaA, alphaB, entries)
	if err != nil {
		return zero, err
	}

	gapModel, err := gap.New(body.Dx, body.Ex, body.Dy, body.Ey)
	if err != nil {
		return zero, err
	}

	a, err := seq.New(alphaA, []rune(body.SequenceA), "A")
	if err != nil {
		return zero, err
	}
	b, err := seq.New(alphaB, []rune(body.SequenceB), "B")
	if err != nil {
		return zero, err
	}

	return align.Request[float64]{
		A: a, B: b, Table: table, GapModel: gapModel, Mode: mode, Kernel: score.New[float64](),
	}, nil
}

func modeFromInt(m int) (dp.Mode, error) {
	switch m {
	case 0:
		return dp.Global, nil
	case 1:
		return dp.Local, nil
	default:
		return 0, &coerr.UnknownModeError{Value: fmt.Sprintf("%d", m)}
	}
}

// RunAlignmentHandler handles POST /api/alignment/run, streaming the
// best score followed by each co-optimal alignment as NDJSON.
func RunAlignmentHandler(w http.ResponseWriter, r *http.Request) {
	var body AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	req, err := buildRequest(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	driver, err := align.Run(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	best, _ := driver.BestScore()

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	flusher, canFlush := w.(http.Flusher)

	_ = enc.Encode(AlignmentResultLine{Score: &best})
	if canFlush {
		flusher.Flush()
	}

	ctx := r.Context()
	for chunk := range driver.Stream(ctx) {
		for _, al := range chunk {
			s := align.Summarize(al)
			_ = enc.Encode(AlignmentResultLine{
				A: al.A,
				B: al.B,
				Summary: &summary{
					Identity:    s.Identity,
					Matches:     s.Matches,
					Mismatches:  s.Mismatches,
					GapOpenings: s.GapOpenings,
					CIGAR:       s.CIGAR,
				},
			})
		}
		if canFlush {
			flusher.Flush()
		}
	}
}
