package quiz

import (
	"errors"
	"fmt"
)

// ErrNoQuestions indicates a quiz document with zero questions.
var ErrNoQuestions = errors.New("quiz has no questions")

// MalformedError indicates a quiz document that fails structural validation.
// Index is the 0-based question at fault, or -1 when the failure is not tied
// to a single question.
type MalformedError struct {
	Name  string
	Index int
	Err   error
}

func (e *MalformedError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("malformed quiz %q: question %d: %v", e.Name, e.Index+1, e.Err)
	}
	return fmt.Sprintf("malformed quiz %q: %v", e.Name, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// NotFoundError indicates the quiz document could not be read.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("quiz not found: %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }
