// Package classify splits a universe of strings into the strings a pattern
// accepts and the strings it rejects.
package classify

import (
	"iter"

	"github.com/coregx/regcheck/internal/parallel"
)

// Matcher reports whether a whole string is in a pattern's language.
// *matcher.Pattern implements it.
type Matcher interface {
	MatchString(s string) bool
}

// Universe is an indexed, restartable sequence of strings.
// *universe.Universe implements it.
type Universe interface {
	Len() int
	Range(lo, hi int) iter.Seq[string]
}

// Partition is the accepted/rejected split of a universe under one pattern.
//
// Both slices are subsequences of the universe in universe order; they are
// disjoint and together hold every string of the universe.
type Partition struct {
	Accepted []string
	Rejected []string
}

// Len returns the number of classified strings.
func (p Partition) Len() int {
	return len(p.Accepted) + len(p.Rejected)
}

type options struct {
	workers int
}

// Option configures Classify.
type Option func(*options)

// WithWorkers spreads classification over up to n goroutines.
// The result is the same for every n; n <= 1 classifies sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Classify runs m over every string of u.
//
// A string is accepted iff m matches all of it. The empty string is
// classified like any other.
func Classify(m Matcher, u Universe, opts ...Option) Partition {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	parts := parallel.Map(u.Len(), o.workers, func(c parallel.Chunk) Partition {
		var p Partition
		for s := range u.Range(c.Lo, c.Hi) {
			if m.MatchString(s) {
				p.Accepted = append(p.Accepted, s)
			} else {
				p.Rejected = append(p.Rejected, s)
			}
		}
		return p
	})

	return merge(parts)
}

func merge(parts []Partition) Partition {
	if len(parts) == 1 {
		return parts[0]
	}
	var na, nr int
	for _, p := range parts {
		na += len(p.Accepted)
		nr += len(p.Rejected)
	}
	out := Partition{
		Accepted: make([]string, 0, na),
		Rejected: make([]string, 0, nr),
	}
	for _, p := range parts {
		out.Accepted = append(out.Accepted, p.Accepted...)
		out.Rejected = append(out.Rejected, p.Rejected...)
	}
	return out
}
