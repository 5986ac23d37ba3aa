package matcher

import "fmt"

// Role names which side of a check a pattern plays.
type Role string

// Pattern roles.
const (
	RoleReference Role = "reference"
	RoleCandidate Role = "candidate"
)

// CompilationError reports a pattern that is not a valid regular expression
// after normalization.
type CompilationError struct {
	// Role is the pattern's side of the check, if known.
	Role Role

	// Pattern is the pattern as written by the user.
	Pattern string

	// Native is the normalized pattern handed to the engine.
	Native string

	// Err is the engine's syntax error.
	Err error
}

// Error implements the error interface.
func (e *CompilationError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("compiling %s pattern %q: %v", e.Role, e.Pattern, e.Err)
	}
	return fmt.Sprintf("compiling pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompilationError) Unwrap() error {
	return e.Err
}
