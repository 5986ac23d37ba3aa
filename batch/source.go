// Package batch grades a file of candidate patterns against the reference
// pattern on its first line.
//
// File format:
//
//	(a+b)*abb      <- reference
//	(a+b)*abb      <- one candidate per line
//	a*b*abb
//
// Line terminators (\n or \r\n) are stripped. Every following line is one
// candidate taken verbatim, so a blank line is the empty pattern, whose
// language is {ε}.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoReference indicates a batch file without a reference line.
var ErrNoReference = errors.New("no reference pattern on the first line")

// maxLineSize bounds a single pattern line.
const maxLineSize = 1 << 20

// InputFileError reports a batch file that is missing, unreadable or
// malformed. It is fatal for the whole batch.
type InputFileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *InputFileError) Error() string {
	return fmt.Sprintf("batch file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *InputFileError) Unwrap() error {
	return e.Err
}

// Candidate is one pattern to grade.
type Candidate struct {
	// Line is the 1-based line number in the source file.
	Line int

	// Pattern is the line's text.
	Pattern string
}

// Source is a parsed batch file.
type Source struct {
	Path       string
	Reference  string
	Candidates []Candidate
}

// ReadFile reads and parses the batch file at path.
// Any failure is returned as an *InputFileError.
func ReadFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputFileError{Path: path, Err: err}
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a batch file from r. name identifies the input in errors.
func Read(r io.Reader, name string) (*Source, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	src := &Source{Path: name}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if line == 1 {
			src.Reference = text
			continue
		}
		src.Candidates = append(src.Candidates, Candidate{Line: line, Pattern: text})
	}
	if err := sc.Err(); err != nil {
		return nil, &InputFileError{Path: name, Err: err}
	}
	if line == 0 {
		return nil, &InputFileError{Path: name, Err: ErrNoReference}
	}
	return src, nil
}
