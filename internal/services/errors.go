package services

import "errors"

// Kind classifies a service failure so the transport layer can map it to a
// status code without inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindBadRequest
	KindForbidden
)

// Error is a structured service failure: a kind plus a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrNotFound builds a NotFound error.
func ErrNotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// ErrConflict builds a Conflict error.
func ErrConflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// ErrBadRequest builds a BadRequest error.
func ErrBadRequest(message string) error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// ErrForbidden builds a Forbidden error.
func ErrForbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

// KindOf extracts the kind from an error chain, KindUnknown when the error
// did not originate from a service.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindUnknown
}
