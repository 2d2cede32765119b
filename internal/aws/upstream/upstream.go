// Package upstream carries failures returned by AWS API calls.
package upstream

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Error is a failed remote call. It is terminal: callers get no partial
// results alongside it and nothing retries it.
type Error struct {
	Op   string
	Code string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap wraps err from the named operation, recording the service error code
// when the SDK reports one. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	ue := &Error{Op: op, Err: err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		ue.Code = apiErr.ErrorCode()
	}
	return ue
}

// Is reports whether err came back from a remote call.
func Is(err error) bool {
	var ue *Error
	return errors.As(err, &ue)
}

// Code returns the service error code carried by err, or "".
func Code(err error) string {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Code
	}
	return ""
}
