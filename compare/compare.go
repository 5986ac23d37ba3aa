// Package compare finds the strings on which a candidate pattern disagrees
// with a reference partition.
package compare

import (
	"slices"

	"github.com/coregx/regcheck/classify"
	"github.com/coregx/regcheck/internal/parallel"
)

// Result holds the counterexamples of one comparison.
//
// Both slices keep the order of the sequence they were drawn from, so the
// first counterexample is deterministic.
type Result struct {
	// FalseNegatives are strings the reference accepts and the candidate
	// rejects.
	FalseNegatives []string

	// FalsePositives are strings the reference rejects and the candidate
	// accepts.
	FalsePositives []string
}

// Consistent reports whether no counterexample was found.
func (r Result) Consistent() bool {
	return len(r.FalseNegatives) == 0 && len(r.FalsePositives) == 0
}

// Len returns the total number of counterexamples.
func (r Result) Len() int {
	return len(r.FalseNegatives) + len(r.FalsePositives)
}

type options struct {
	workers int
}

// Option configures Compare.
type Option func(*options)

// WithWorkers spreads the comparison over up to n goroutines.
// The result is the same for every n.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Compare checks candidate against every string of the reference's accepted
// and rejected sets. There is no early exit: every counterexample is
// collected.
func Compare(accepted, rejected []string, candidate classify.Matcher, opts ...Option) Result {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return Result{
		FalseNegatives: filter(accepted, candidate, false, o.workers),
		FalsePositives: filter(rejected, candidate, true, o.workers),
	}
}

// Partition is Compare over a reference partition.
func Partition(ref classify.Partition, candidate classify.Matcher, opts ...Option) Result {
	return Compare(ref.Accepted, ref.Rejected, candidate, opts...)
}

// filter returns, in order, the items whose match result equals want.
func filter(items []string, m classify.Matcher, want bool, workers int) []string {
	parts := parallel.Map(len(items), workers, func(c parallel.Chunk) []string {
		var out []string
		for _, s := range items[c.Lo:c.Hi] {
			if m.MatchString(s) == want {
				out = append(out, s)
			}
		}
		return out
	})
	return slices.Concat(parts...)
}
