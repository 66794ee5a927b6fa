package ecolite

import (
	"fmt"
)

// Each validation stage fails with its own error type so callers can tell
// stages apart with errors.As and pull out the offending detail. Exactly one
// of these is returned per failed run; later stages never execute once an
// earlier stage has failed.

// LoadError indicates the dataset file could not be read: missing file,
// permission problem, codec failure, or content that is not valid UTF-8.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseError indicates the file content is not valid JSON. Err carries the
// decoder's own diagnostic, including the byte offset for syntax errors.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing dataset: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError indicates the parsed root value is not a JSON array.
type ShapeError struct{}

func (e *ShapeError) Error() string {
	return "dataset root must be an array"
}

// FieldError indicates one or more entries are missing required keys.
// Indices lists every offending position in array order; an entry that is
// not a JSON object at all is included as well.
type FieldError struct {
	Indices []int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("entries missing required keys: %v", e.Indices)
}

// DuplicateError indicates two or more entries share a moves string.
// Moves lists each duplicated value once, in first-occurrence order.
type DuplicateError struct {
	Moves []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate move strings found (%d): %q", len(e.Moves), e.Moves)
}

// MoveIssue describes one entry whose moves string is not legal movetext.
type MoveIssue struct {
	Index int
	Moves string
	Err   error
}

// MoveError indicates entries failed the optional movetext legality check
// (see WithMoveCheck). Like FieldError, it reports every offender at once.
type MoveError struct {
	Issues []MoveIssue
}

func (e *MoveError) Error() string {
	msg := fmt.Sprintf("entries with illegal movetext (%d):", len(e.Issues))
	for _, issue := range e.Issues {
		msg += fmt.Sprintf(" entry %d (%q): %v;", issue.Index, issue.Moves, issue.Err)
	}
	return msg
}
