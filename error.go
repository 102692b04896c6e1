package omnidocs

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	ECANCELED  = "canceled"
	EDISCOVERY = "discovery"
	ELOAD      = "page_load"
	ETIMEOUT   = "timeout"
	EEMPTY     = "extraction_empty"
	EASSEMBLY  = "assembly"
)

// Error represents an application-specific error. Err optionally carries
// the underlying cause so errors.Is keeps working through the code layer.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("omnidocs error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError returns an Error with the given code whose message is the
// formatted prefix followed by the cause's message.
func WrapError(code string, err error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg += ": " + ErrorMessageOrText(err)
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// ErrorMessageOrText returns the application message for application errors
// and the plain error text for everything else. It is used for user-facing
// failure reasons, where "Internal error." would hide the cause.
func ErrorMessageOrText(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
