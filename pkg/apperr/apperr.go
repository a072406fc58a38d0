package apperr

import "errors"

// Kind classifies an application error so the HTTP layer can pick a status
// code without inspecting error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

type Error struct {
	kind    Kind
	message string
	err     error
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func newError(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Validation is malformed input (HTTP 400).
func Validation(message string) *Error {
	return newError(KindValidation, message)
}

// Auth is bad credentials or a missing/invalid identity (HTTP 401).
func Auth(message string) *Error {
	return newError(KindAuth, message)
}

// Forbidden is an authenticated caller acting on a resource it does not own
// (HTTP 403).
func Forbidden(message string) *Error {
	return newError(KindForbidden, message)
}

// NotFound is an absent resource (HTTP 404).
func NotFound(message string) *Error {
	return newError(KindNotFound, message)
}

// Conflict is a duplicate unique key (HTTP 409).
func Conflict(message string) *Error {
	return newError(KindConflict, message)
}

// Wrap attaches a cause while keeping the caller-facing message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{kind: kind, message: message, err: err}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
