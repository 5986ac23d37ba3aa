// Package report renders verdicts for people and for programs.
//
// Text reports follow the layout graders read:
//
//	a is incorrect
//	  should have been accepted but was rejected: b
//
// JSON reports emit one object per candidate, one per line.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/coregx/regcheck"
	"github.com/coregx/regcheck/notation"
)

// Reporter renders one report per checked candidate.
type Reporter interface {
	// Verdict reports a candidate that compiled and was checked.
	Verdict(v *regcheck.Verdict) error

	// Failure reports a candidate that could not be checked.
	Failure(candidate string, err error) error
}

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

// Options controls text rendering.
type Options struct {
	// Full lists every counterexample instead of the first of each kind.
	Full bool

	// TrailingNewline ends each report with a blank line, which separates
	// consecutive reports in a batch.
	TrailingNewline bool

	// Lang is the report language.
	Lang Lang

	// Color highlights the headline with ANSI colors.
	Color bool

	// EmptyMarker stands in for the empty string. Empty means ε.
	EmptyMarker string
}

// DefaultOptions returns short English reports separated by blank lines.
func DefaultOptions() Options {
	return Options{
		TrailingNewline: true,
		Lang:            LangEnglish,
		EmptyMarker:     notation.EmptySymbol,
	}
}

// Text writes human-readable reports.
type Text struct {
	w    io.Writer
	opts Options
	msgs messages
}

// NewText returns a text reporter writing to w.
func NewText(w io.Writer, opts Options) *Text {
	if opts.EmptyMarker == "" {
		opts.EmptyMarker = notation.EmptySymbol
	}
	return &Text{
		w:    w,
		opts: opts,
		msgs: messagesFor(opts.Lang),
	}
}

// Verdict writes the report for v.
func (t *Text) Verdict(v *regcheck.Verdict) error {
	var buf bytes.Buffer
	if v.Consistent() {
		t.headline(&buf, colorGreen, t.msgs.correct(t.display(v.Candidate)))
		fmt.Fprintf(&buf, "  %s\n", t.msgs.searched(v.Alphabet.String(), v.MaxLength))
	} else {
		t.headline(&buf, colorRed, t.msgs.incorrect(t.display(v.Candidate)))
		t.counterexamples(&buf, t.msgs.shouldAccept, v.FalseNegatives)
		t.counterexamples(&buf, t.msgs.shouldReject, v.FalsePositives)
	}
	return t.flush(&buf)
}

// Failure writes the report for a candidate that did not compile.
func (t *Text) Failure(candidate string, err error) error {
	var buf bytes.Buffer
	t.headline(&buf, colorYellow, t.msgs.failure(t.display(candidate), cause(err)))
	return t.flush(&buf)
}

func (t *Text) headline(buf *bytes.Buffer, color, line string) {
	if t.opts.Color {
		buf.WriteString(color)
		buf.WriteString(line)
		buf.WriteString(colorReset)
	} else {
		buf.WriteString(line)
	}
	buf.WriteByte('\n')
}

// display renders s, a pattern or a counterexample, with the empty marker.
func (t *Text) display(s string) string {
	return notation.Display(s, t.opts.EmptyMarker)
}

func (t *Text) counterexamples(buf *bytes.Buffer, label string, set []string) {
	if !t.opts.Full && len(set) > 1 {
		set = set[:1]
	}
	for _, s := range set {
		fmt.Fprintf(buf, "  %s %s\n", label, t.display(s))
	}
}

func (t *Text) flush(buf *bytes.Buffer) error {
	if t.opts.TrailingNewline {
		buf.WriteByte('\n')
	}
	_, err := t.w.Write(buf.Bytes())
	return err
}

// cause strips the pattern prefix of a compilation error, since the
// headline already names the pattern.
func cause(err error) error {
	if ce, ok := regcheck.IsCompilationError(err); ok && ce.Err != nil {
		return ce.Err
	}
	return err
}
