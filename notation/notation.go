// Package notation rewrites regular expressions written in the textbook
// notation of formal language courses into the native syntax understood by
// the matching engine.
//
// Two conventions are rewritten:
//   - ε, the explicit empty-string symbol, is removed (it is the identity
//     of concatenation)
//   - +, textbook alternation, becomes |
//
// The rewrite is purely textual. Malformed input is passed through and left
// for the engine's compile step to reject.
package notation

import "strings"

// EmptySymbol is the textbook symbol for the empty string.
const EmptySymbol = "ε"

// Alternation is the textbook alternation operator.
const Alternation = "+"

// nativeAlternation is the engine's alternation operator.
const nativeAlternation = "|"

var rewriter = strings.NewReplacer(
	EmptySymbol, "",
	Alternation, nativeAlternation,
)

// Normalize returns pattern rewritten into engine syntax.
//
// Every ε is dropped and every + becomes |. The two rules touch disjoint
// characters, so the order they are applied in does not matter. A + meant as
// the one-or-more quantifier is rewritten as well; write aa* instead.
//
// Example:
//
//	notation.Normalize("a+εb") // "a|b"
func Normalize(pattern string) string {
	if !strings.Contains(pattern, EmptySymbol) && !strings.Contains(pattern, Alternation) {
		return pattern
	}
	return rewriter.Replace(pattern)
}

// Display returns s, or marker when s is the empty string.
// Reporters use it so that an empty counterexample is visible.
func Display(s, marker string) string {
	if s == "" {
		return marker
	}
	return s
}
