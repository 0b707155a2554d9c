package boundedmap

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded     = errors.New("map capacity exceeded")
	ErrUnsupportedOperation = errors.New("unsupported operation on empty map")
)

// MapError records the operation that failed and why.
// Callers match the cause with errors.Is.
type MapError struct {
	Op    string
	Size  int
	Cause error
}

func (e *MapError) Error() string {
	if e.Size > 0 {
		return fmt.Sprintf("boundedmap %s (size %d): %v", e.Op, e.Size, e.Cause)
	}
	return fmt.Sprintf("boundedmap %s: %v", e.Op, e.Cause)
}

func (e *MapError) Unwrap() error {
	return e.Cause
}

func newMapError(op string, size int, cause error) *MapError {
	return &MapError{
		Op:    op,
		Size:  size,
		Cause: cause,
	}
}

func wrapError(op string, err error) *MapError {
	return &MapError{
		Op:    op,
		Cause: err,
	}
}
