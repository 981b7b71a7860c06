package strpath

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironmentUnavailable is returned when the current or home
	// directory cannot be determined.
	ErrEnvironmentUnavailable = errors.New("environment unavailable")
	// ErrPrefixMismatch is returned when a path is not rooted under the
	// directory it is being made relative to.
	ErrPrefixMismatch = errors.New("prefix mismatch")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newEnvironmentError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrEnvironmentUnavailable,
		msg:        msg,
		cause:      cause,
	}
}

func newPrefixMismatchError(path, base string) error {
	return &wrapError{
		underlying: ErrPrefixMismatch,
		msg:        fmt.Sprintf("%q is not under %q", path, base),
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
