package fault

import (
	"errors"
	"fmt"
)

// Kind tags an error with the failure category it belongs to, so HTTP
// handlers can map errors to status codes without matching message text.
type Kind int

const (
	Unknown Kind = iota
	UserNotFound
	DirectoryUnavailable
	CalendarOperationFailed
	MailDeliveryFailed
)

type Error struct {
	Kind Kind
	// Op names the provider operation that failed (e.g. "insert"), empty
	// when not applicable.
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with the given kind and operation name.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds a tagged error from a format string.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of the first tagged error in err's chain,
// or Unknown if none is present.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
