// Package apperr classifies the outcomes the account and session flows can
// surface to callers. Validation, Conflict, Authentication and Authorization
// are expected results and map to structured responses; Dependency means a
// backing store or cache call failed and the caller must not assume the
// operation took effect.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindAuthorization
	KindDependency
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// Message is the user-presentable text, without any wrapped cause.
func (e *Error) Message() string { return e.msg }

func Validation(msg string) error {
	return &Error{kind: KindValidation, msg: msg}
}

func Conflict(msg string) error {
	return &Error{kind: KindConflict, msg: msg}
}

func Authentication(msg string) error {
	return &Error{kind: KindAuthentication, msg: msg}
}

func Authorization(msg string) error {
	return &Error{kind: KindAuthorization, msg: msg}
}

func Dependency(msg string, cause error) error {
	return &Error{kind: KindDependency, msg: msg, err: cause}
}

// KindOf reports the classification of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// MessageOf returns the presentable message of a classified error, falling
// back to err.Error() for plain ones.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return err.Error()
}
