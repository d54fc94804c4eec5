package publication

import (
	"errors"
	"fmt"
)

// ErrorKind classifies service failures for the HTTP boundary
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindDomainValidation ErrorKind = "domain_validation"
	KindUnexpected       ErrorKind = "unexpected"
)

// Error is returned by every Service operation that fails
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, KindUnexpected for foreign errors
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnexpected
}

func notFound(id int) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("publication %d not found.", id)}
}

func invalid(msg string) error {
	return &Error{Kind: KindDomainValidation, Msg: msg}
}

func unexpected(op string, err error) error {
	return &Error{Kind: KindUnexpected, Msg: op, Err: err}
}
