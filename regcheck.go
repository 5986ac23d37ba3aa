// Package regcheck checks whether a candidate regular expression describes
// the same language as a reference one, up to a length bound.
//
// Every string of length 0..L over a finite alphabet is classified under the
// reference, and the candidate is then tested against both halves of that
// classification. The outcome is either "consistent up to length L", which
// is bounded evidence and not a proof, or a list of counterexamples.
//
// Patterns are written in textbook notation: + is alternation and ε is the
// empty string. See package notation.
//
// Basic usage:
//
//	opts := regcheck.DefaultOptions()
//	opts.Alphabet = universe.MustAlphabet("a", "b")
//	v, err := regcheck.Check("(a+b)*", "(a*b*)*", opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Consistent()) // true
//
// Grading many answers against one reference:
//
//	c, err := regcheck.NewChecker("(ab)*", opts)
//	for _, answer := range answers {
//	    v, err := c.Check(answer)
//	    ...
//	}
//
// A Checker generates the universe and classifies it under the reference
// once, then reuses that partition for every candidate.
package regcheck

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/coregx/regcheck/classify"
	"github.com/coregx/regcheck/compare"
	"github.com/coregx/regcheck/matcher"
	"github.com/coregx/regcheck/universe"
)

// DefaultMaxLength is the default length bound.
const DefaultMaxLength = 10

// DefaultCacheSize is the default number of cached candidate results.
const DefaultCacheSize = 256

// Options configures a check.
type Options struct {
	// Alphabet is the set of symbols strings are built from.
	Alphabet universe.Alphabet

	// MaxLength is the length bound L. Strings of length 0..L are checked.
	MaxLength int

	// MaxUniverse caps the number of generated strings.
	// Zero means universe.DefaultMaxSize; a negative value removes the cap.
	MaxUniverse int

	// Engine selects the regex engine. Empty means coregex.
	Engine matcher.Engine

	// MaxDFAStates sizes the coregex DFA cache. Zero keeps the default.
	MaxDFAStates uint32

	// Workers is the number of goroutines used to classify and compare.
	// Values <= 1 run sequentially. Results do not depend on it.
	Workers int

	// CacheSize is the number of candidate results a Checker remembers,
	// keyed by normalized pattern. Zero disables the cache.
	CacheSize int

	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns options with the default length bound and cache.
// The alphabet is empty and must be set by the caller.
func DefaultOptions() Options {
	return Options{
		MaxLength: DefaultMaxLength,
		Engine:    matcher.EngineCoregex,
		Workers:   1,
		CacheSize: DefaultCacheSize,
	}
}

func (o Options) compileOptions(role matcher.Role) []matcher.Option {
	return []matcher.Option{
		matcher.WithEngine(o.Engine),
		matcher.WithMaxDFAStates(o.MaxDFAStates),
		matcher.WithRole(role),
	}
}

// Verdict is the outcome of checking one candidate.
type Verdict struct {
	// Reference and Candidate are the patterns as written.
	Reference string
	Candidate string

	// Alphabet and MaxLength describe the searched universe.
	Alphabet  universe.Alphabet
	MaxLength int

	// Result holds the counterexamples. Slices may be shared with other
	// verdicts from the same Checker and must not be modified.
	compare.Result
}

// Checker checks candidates against one reference pattern.
//
// A Checker is safe for concurrent use: the reference partition is read-only
// and patterns hand each goroutine its own engine state.
type Checker struct {
	opts      Options
	reference *matcher.Pattern
	universe  *universe.Universe
	partition classify.Partition
	cache     *lru.Cache[string, compare.Result]
	logger    *slog.Logger
}

// NewChecker compiles reference, generates the universe and classifies it.
//
// A reference that does not compile is reported as a
// *matcher.CompilationError with Role matcher.RoleReference.
func NewChecker(reference string, opts Options) (*Checker, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ref, err := matcher.Compile(reference, opts.compileOptions(matcher.RoleReference)...)
	if err != nil {
		return nil, err
	}

	limit := opts.MaxUniverse
	if limit == 0 {
		limit = universe.DefaultMaxSize
	}
	u, err := universe.NewWithLimit(opts.Alphabet, opts.MaxLength, limit)
	if err != nil {
		return nil, fmt.Errorf("building universe: %w", err)
	}

	start := time.Now()
	partition := classify.Classify(ref, u, classify.WithWorkers(opts.Workers))
	logger.Debug("reference classified",
		slog.String("reference", reference),
		slog.String("native", ref.Native()),
		slog.String("universe", u.String()),
		slog.Int("strings", u.Len()),
		slog.Int("accepted", len(partition.Accepted)),
		slog.Int("rejected", len(partition.Rejected)),
		slog.Duration("elapsed", time.Since(start)),
	)

	c := &Checker{
		opts:      opts,
		reference: ref,
		universe:  u,
		partition: partition,
		logger:    logger,
	}
	if opts.CacheSize > 0 {
		c.cache, err = lru.New[string, compare.Result](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating result cache: %w", err)
		}
	}
	return c, nil
}

// Check compares candidate with the reference.
//
// A candidate that does not compile is reported as a
// *matcher.CompilationError with Role matcher.RoleCandidate; it never yields
// a verdict.
func (c *Checker) Check(candidate string) (*Verdict, error) {
	cand, err := matcher.Compile(candidate, c.opts.compileOptions(matcher.RoleCandidate)...)
	if err != nil {
		return nil, err
	}

	result, cached := c.lookup(cand.Native())
	if !cached {
		result = compare.Partition(c.partition, cand, compare.WithWorkers(c.opts.Workers))
		if c.cache != nil {
			c.cache.Add(cand.Native(), result)
		}
	}
	c.logger.Debug("candidate checked",
		slog.String("candidate", candidate),
		slog.Bool("cached", cached),
		slog.Int("false_negatives", len(result.FalseNegatives)),
		slog.Int("false_positives", len(result.FalsePositives)),
	)

	return &Verdict{
		Reference: c.reference.Source(),
		Candidate: candidate,
		Alphabet:  c.universe.Alphabet(),
		MaxLength: c.universe.MaxLength(),
		Result:    result,
	}, nil
}

func (c *Checker) lookup(native string) (compare.Result, bool) {
	if c.cache == nil {
		return compare.Result{}, false
	}
	return c.cache.Get(native)
}

// Reference returns the compiled reference pattern.
func (c *Checker) Reference() *matcher.Pattern {
	return c.reference
}

// Universe returns the searched universe.
func (c *Checker) Universe() *universe.Universe {
	return c.universe
}

// Partition returns the reference's classification of the universe.
// The slices must not be modified.
func (c *Checker) Partition() classify.Partition {
	return c.partition
}

// Check compares one candidate with reference.
// Use a Checker to grade several candidates against the same reference.
func Check(reference, candidate string, opts Options) (*Verdict, error) {
	c, err := NewChecker(reference, opts)
	if err != nil {
		return nil, err
	}
	return c.Check(candidate)
}

// IsCompilationError reports whether err is, or wraps, a
// *matcher.CompilationError, and returns it.
func IsCompilationError(err error) (*matcher.CompilationError, bool) {
	var ce *matcher.CompilationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
