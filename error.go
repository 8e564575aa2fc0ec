package flightdocs

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EAMBIGUOUS   = "ambiguous"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOCONTENT   = "no_content"
	ENOTFOUND    = "not_found"
	ENOTSIGNEDIN = "not_signed_in"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error. Message is suitable for
// display to the end user.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("flightdocs error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AmbiguousError is returned when a name matches more than one document.
// Documents holds every candidate so callers can offer a choice.
type AmbiguousError struct {
	Name      string
	Documents []*Document
}

// Error implements the error interface.
func (e *AmbiguousError) Error() string {
	return "Multiple documents match the given name"
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var ae *AmbiguousError
	if errors.As(err, &ae) {
		return EAMBIGUOUS
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *AmbiguousError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
