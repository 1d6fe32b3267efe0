package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable class of a failure, exposed to API clients.
type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindConflict   ErrorKind = "conflict"
	ErrorKindDependency ErrorKind = "dependency"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindStore      ErrorKind = "store"
)

// Error is a classified failure. Err keeps the underlying cause for logging and errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error returns Message when set, otherwise the cause's text verbatim.
func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Dependencyf(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindDependency, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or store for anything else.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrorKindStore
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
