package cli

import (
	"fmt"

	"commentbox/internal/validate"
)

// rejectedError reports a comment the submit pipeline turned down.
type rejectedError struct {
	err *validate.Error
}

func (e rejectedError) Error() string {
	return fmt.Sprintf("%s: %s", e.err.Field, e.err.Message())
}

func (e rejectedError) Unwrap() error { return e.err }

func errRejected(err *validate.Error) error {
	return rejectedError{err: err}
}
