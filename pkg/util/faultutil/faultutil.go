package faultutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes a fault surfaced to the user.
type Kind string

const (
	// KindTransport covers network failures and HTTP errors with no
	// structured message.
	KindTransport Kind = "TRANSPORT"
	// KindValidation covers server-reported semantic rejections, e.g. a
	// duplicate email.
	KindValidation Kind = "VALIDATION"
	// KindNotFound covers edit/delete targets absent on the server.
	KindNotFound Kind = "NOT_FOUND"
	// KindInternal covers unexpected failures.
	KindInternal Kind = "INTERNAL"
)

// Fault is a categorized failure result, as opposed to an unhandled crash.
type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// HTTPStatus maps the fault kind to a response status.
func (f *Fault) HTTPStatus() int {
	switch f.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewTransport wraps a network or protocol failure.
func NewTransport(message string, err error) error {
	return &Fault{Kind: KindTransport, Message: message, Err: err}
}

// NewValidation reports a semantic rejection with a user-facing message.
func NewValidation(message string) error {
	return &Fault{Kind: KindValidation, Message: message}
}

// NewNotFound reports an absent target.
func NewNotFound(message string) error {
	return &Fault{Kind: KindNotFound, Message: message}
}

// NewInternal wraps an unexpected failure.
func NewInternal(err error) error {
	return &Fault{Kind: KindInternal, Message: "internal error", Err: err}
}

// ToFault converts any error into a Fault, defaulting to KindInternal.
func ToFault(err error) *Fault {
	if err == nil {
		return nil
	}
	var fault *Fault
	if errors.As(err, &fault) {
		return fault
	}
	return &Fault{Kind: KindInternal, Message: "internal error", Err: err}
}

// IsKind reports whether err carries a Fault of the given kind.
func IsKind(err error, kind Kind) bool {
	var fault *Fault
	return errors.As(err, &fault) && fault.Kind == kind
}

// Message extracts the user-facing text of an error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var fault *Fault
	if errors.As(err, &fault) {
		return fault.Message
	}
	return err.Error()
}
