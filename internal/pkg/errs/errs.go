package errs

import (
	"context"
	"errors"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr so that Is(err, markErr) holds while the
// original cause is preserved for logging. Marks are invisible to the
// standard library's errors.Is; match them with Is from this package.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether ref appears in err's chain, including marks
// attached via Mark. The standard library's errors.Is does not see
// marks, so mark-aware matching must go through here.
func Is(err, ref error) bool {
	return cr.Is(err, ref)
}

// IsTimeout reports whether the error chain contains a deadline
// expiration. Callers must treat the operation's outcome as unknown.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
