package pathio

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors through every helper of the readers would add a lot of
// noise. Instead, the helpers panic with a *ParseError, and the public API
// recovers to convert it back to an error.

type ParseError struct {
	// 1-based line of the text input, or 0 when there is no line to report
	Line int
	err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.err)
	}
	return e.err.Error()
}

func (e *ParseError) Cause() error  { return e.err }
func (e *ParseError) Unwrap() error { return e.err }

// Panic with a *ParseError.
func fatalf(line int, format string, args ...interface{}) {
	panic(&ParseError{Line: line, err: errors.Errorf(format, args...)})
}

// Converts a recovered *ParseError into an error. Any other panic is
// re-raised, since it's a real bug.
func HandleParsePanicRecover(r interface{}) error {
	if r != nil {
		if parseError, ok := r.(*ParseError); ok {
			return parseError
		}
		panic(r)
	}
	return nil
}
