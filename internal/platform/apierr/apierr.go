// Package apierr lets services pick the HTTP status and machine-readable code
// for a failure without importing the transport layer; handlers unwrap it with
// errors.As and write the envelope.
package apierr

import "fmt"

// Error pairs an underlying error with the status and stable code it should
// produce on the wire.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}
