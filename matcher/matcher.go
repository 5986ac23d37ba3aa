// Package matcher compiles patterns into immutable full-string matchers.
//
// A Pattern accepts a string only when the whole string matches, the way a
// formal language accepts words. Substring matches never count.
//
// Two engines are available. The default is coregex, a multi-engine
// (lazy DFA, PikeVM, prefilter) implementation with RE2 semantics. The
// stdlib engine uses Go's regexp package and exists for cross-checking.
//
// Basic usage:
//
//	p, err := matcher.Compile("a+b")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.MatchString("a")  // true
//	p.MatchString("ab") // false: "a+b" is the textbook a|b
package matcher

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/coregx/coregex"
	"github.com/coregx/regcheck/notation"
)

// Engine selects the regex implementation behind a Pattern.
type Engine string

// Supported engines.
const (
	EngineCoregex Engine = "coregex"
	EngineStdlib  Engine = "stdlib"
)

// ParseEngine returns the engine named s. The empty string means coregex.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "", EngineCoregex:
		return EngineCoregex, nil
	case EngineStdlib:
		return EngineStdlib, nil
	default:
		return "", fmt.Errorf("unknown engine %q (want %q or %q)", s, EngineCoregex, EngineStdlib)
	}
}

// program is the compiled form of a pattern, whichever engine built it.
type program interface {
	MatchString(s string) bool
}

type options struct {
	engine       Engine
	maxDFAStates uint32
	role         Role
}

// Option configures Compile.
type Option func(*options)

// WithEngine selects the engine. The default is EngineCoregex.
func WithEngine(e Engine) Option {
	return func(o *options) {
		if e != "" {
			o.engine = e
		}
	}
}

// WithMaxDFAStates sets the coregex lazy DFA cache size.
// Zero keeps the engine default. Ignored by the stdlib engine.
func WithMaxDFAStates(n uint32) Option {
	return func(o *options) {
		o.maxDFAStates = n
	}
}

// WithRole records the pattern's role in compilation errors.
func WithRole(r Role) Option {
	return func(o *options) {
		o.role = r
	}
}

// Pattern is a compiled full-match pattern.
//
// A Pattern is safe for concurrent use. A coregex program keeps mutable
// search state, so each concurrent caller borrows its own copy from a pool;
// copies are compiled on demand from the same anchored pattern.
type Pattern struct {
	source string
	native string
	engine Engine

	// shared is set for engines whose programs are safe to share.
	shared program
	pool   sync.Pool
}

// Compile normalizes source from textbook notation and compiles it for
// full-string matching.
//
// The normalized pattern is compiled on its own first, so a pattern such as
// a)|(b, which only parses once wrapped in an anchoring group, is rejected.
// Any failure is returned as a *CompilationError.
func Compile(source string, opts ...Option) (*Pattern, error) {
	o := options{engine: EngineCoregex}
	for _, opt := range opts {
		opt(&o)
	}

	native := notation.Normalize(source)
	fail := func(err error) error {
		return &CompilationError{
			Role:    o.role,
			Pattern: source,
			Native:  native,
			Err:     err,
		}
	}

	if _, err := compileWith(o, native); err != nil {
		return nil, fail(err)
	}
	prog, err := compileWith(o, anchor(native))
	if err != nil {
		return nil, fail(err)
	}

	p := &Pattern{
		source: source,
		native: native,
		engine: o.engine,
	}
	if o.engine == EngineStdlib {
		p.shared = prog
		return p, nil
	}

	anchored := anchor(native)
	p.pool.New = func() any {
		prog, err := compileWith(o, anchored)
		if err != nil {
			// The same text compiled above.
			panic("matcher: recompiling `" + anchored + "`: " + err.Error())
		}
		return prog
	}
	p.pool.Put(prog)
	return p, nil
}

// MustCompile is like Compile but panics if the pattern does not compile.
func MustCompile(source string, opts ...Option) *Pattern {
	p, err := Compile(source, opts...)
	if err != nil {
		panic("matcher: Compile(`" + source + "`): " + err.Error())
	}
	return p
}

// anchor wraps a native pattern so that it must span the whole input.
// Without a multi-line flag, ^ and $ only match at the ends of the text.
func anchor(native string) string {
	return "^(?:" + native + ")$"
}

func compileWith(o options, pattern string) (program, error) {
	switch o.engine {
	case EngineStdlib:
		return regexp.Compile(pattern)
	case EngineCoregex:
		cfg := coregex.DefaultConfig()
		if o.maxDFAStates > 0 {
			cfg.MaxDFAStates = o.maxDFAStates
		}
		return coregex.CompileWithConfig(pattern, cfg)
	default:
		return nil, fmt.Errorf("unknown engine %q", o.engine)
	}
}

// MatchString reports whether the entire string s matches the pattern.
func (p *Pattern) MatchString(s string) bool {
	if p.shared != nil {
		return p.shared.MatchString(s)
	}
	prog := p.pool.Get().(program)
	ok := prog.MatchString(s)
	p.pool.Put(prog)
	return ok
}

// Source returns the pattern as passed to Compile.
func (p *Pattern) Source() string {
	return p.source
}

// Native returns the normalized, unanchored pattern.
func (p *Pattern) Native() string {
	return p.native
}

// Engine returns the engine that compiled the pattern.
func (p *Pattern) Engine() Engine {
	return p.engine
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.source
}
