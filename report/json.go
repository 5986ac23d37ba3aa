package report

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/coregx/regcheck"
)

// Status values of a JSON record.
const (
	StatusConsistent   = "consistent"
	StatusInconsistent = "inconsistent"
	StatusCompileError = "compile_error"
)

// Record is one JSON report. Compile error records carry no alphabet or
// length bound.
type Record struct {
	RunID          string   `json:"run_id"`
	Reference      string   `json:"reference,omitempty"`
	Candidate      string   `json:"candidate"`
	Status         string   `json:"status"`
	Alphabet       []string `json:"alphabet,omitempty"`
	MaxLength      *int     `json:"max_length,omitempty"`
	FalseNegatives []string `json:"false_negatives"`
	FalsePositives []string `json:"false_positives"`
	Error          string   `json:"error,omitempty"`
}

// JSON writes newline-delimited JSON records. Every counterexample is listed.
type JSON struct {
	enc   *json.Encoder
	runID string
}

// NewJSON returns a JSON reporter writing to w. Records carry runID so that
// several runs can share one log; an empty runID gets a random UUID.
func NewJSON(w io.Writer, runID string) *JSON {
	if runID == "" {
		runID = uuid.NewString()
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSON{enc: enc, runID: runID}
}

// RunID returns the run identifier stamped on every record.
func (j *JSON) RunID() string {
	return j.runID
}

// Verdict writes the record for v.
func (j *JSON) Verdict(v *regcheck.Verdict) error {
	status := StatusInconsistent
	if v.Consistent() {
		status = StatusConsistent
	}
	return j.enc.Encode(Record{
		RunID:          j.runID,
		Reference:      v.Reference,
		Candidate:      v.Candidate,
		Status:         status,
		Alphabet:       v.Alphabet.Symbols(),
		MaxLength:      &v.MaxLength,
		FalseNegatives: nonNil(v.FalseNegatives),
		FalsePositives: nonNil(v.FalsePositives),
	})
}

// Failure writes the record for a candidate that did not compile.
func (j *JSON) Failure(candidate string, err error) error {
	return j.enc.Encode(Record{
		RunID:     j.runID,
		Candidate: candidate,
		Status:    StatusCompileError,
		Error:     cause(err).Error(),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
