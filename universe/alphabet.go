// Package universe generates the bounded search space of a bounded
// equivalence check: every string of length 0..L over a finite alphabet.
//
// Strings are produced length-major (the empty string, then every string of
// length 1, and so on) and, within one length, in the lexicographic order
// induced by the alphabet's declared symbol order. A Universe never holds its
// strings in memory; it is a restartable sequence that can be walked any
// number of times, addressed by index, or split into ranges for parallel
// consumers.
package universe

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Errors returned by alphabet and universe construction.
var (
	// ErrDuplicateSymbol indicates a symbol appears twice in an alphabet.
	ErrDuplicateSymbol = errors.New("duplicate alphabet symbol")

	// ErrAmbiguousSymbol indicates a symbol is a prefix of another, so
	// distinct symbol sequences could spell the same string.
	ErrAmbiguousSymbol = errors.New("alphabet symbol is a prefix of another")

	// ErrEmptySymbol indicates an alphabet symbol is the empty string.
	ErrEmptySymbol = errors.New("empty alphabet symbol")

	// ErrNegativeLength indicates a negative length bound.
	ErrNegativeLength = errors.New("negative length bound")

	// ErrTooLarge indicates the universe exceeds the configured size limit.
	ErrTooLarge = errors.New("universe too large")
)

// Alphabet is an ordered set of distinct, non-empty symbols.
//
// A symbol is usually a single character but may be any non-empty string; it
// is one unit of a generated string. No symbol may be a prefix of another,
// so every generated string has exactly one spelling. The zero value is the
// empty alphabet.
type Alphabet struct {
	symbols []string
}

// NewAlphabet returns an alphabet with the given symbols, in order.
func NewAlphabet(symbols ...string) (Alphabet, error) {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" {
			return Alphabet{}, ErrEmptySymbol
		}
		if _, dup := seen[s]; dup {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for i, s := range out {
		for j, t := range out {
			if i != j && strings.HasPrefix(t, s) {
				return Alphabet{}, fmt.Errorf("%w: %q is a prefix of %q", ErrAmbiguousSymbol, s, t)
			}
		}
	}
	return Alphabet{symbols: out}, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
func MustAlphabet(symbols ...string) Alphabet {
	a, err := NewAlphabet(symbols...)
	if err != nil {
		panic("universe: NewAlphabet: " + err.Error())
	}
	return a
}

// ParseAlphabet parses a command-line alphabet.
//
// A list containing a comma is split on commas, with surrounding spaces
// trimmed ("a, b, c"). Otherwise every rune is one symbol ("abc").
// An empty list gives the empty alphabet.
func ParseAlphabet(list string) (Alphabet, error) {
	if list == "" {
		return Alphabet{}, nil
	}
	if strings.Contains(list, ",") {
		parts := strings.Split(list, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return NewAlphabet(parts...)
	}
	symbols := make([]string, 0, utf8.RuneCountInString(list))
	for _, r := range list {
		symbols = append(symbols, string(r))
	}
	return NewAlphabet(symbols...)
}

// Len returns the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the i-th symbol.
func (a Alphabet) Symbol(i int) string {
	return a.symbols[i]
}

// Symbols returns a copy of the symbols in declared order.
func (a Alphabet) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String returns the alphabet in set notation, e.g. "{a,b}".
func (a Alphabet) String() string {
	return "{" + strings.Join(a.symbols, ",") + "}"
}
