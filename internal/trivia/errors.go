package trivia

import (
	"errors"
	"fmt"
	"strings"
)

// Every failure a request can end with is one of these three.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
)

// ValidationError reports why a request body was rejected. Kind is one of
// the sentinels above and decides the status code.
type ValidationError struct {
	Kind     error
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// unprocessable folds any failure of a write path into ErrUnprocessable. The
// cause is kept as text only, so a wrapped ErrNotFound no longer matches.
func unprocessable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnprocessable, err)
}
