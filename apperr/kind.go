package apperr

import (
	"errors"
	"net/http"
)

// Kind is the closed set of failure categories a fault can be classified
// into. The string value is what callers see as error_type in the response
// envelope, so it is part of the wire contract and must stay stable.
type Kind string

const (
	KindNotFound            Kind = "NotFound"
	KindDatabaseUnavailable Kind = "DatabaseUnavailable"
	KindDatabaseOperational Kind = "DatabaseOperational"
	KindNullReference       Kind = "NullReference"
	KindValidation          Kind = "Validation"
	KindInternal            Kind = "Internal"
)

// Sentinel errors for each kind. Application code wraps these with %w so the
// classifier can resolve the kind with errors.Is regardless of how many
// layers of context were added on the way up.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrDatabaseOperational = errors.New("database object missing")
	ErrNullReference       = errors.New("nil reference dereferenced")
	ErrValidation          = errors.New("validation failed")
	ErrInternal            = errors.New("internal error")
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Sentinel returns the sentinel error for the kind.
func (k Kind) Sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindDatabaseUnavailable:
		return ErrDatabaseUnavailable
	case KindDatabaseOperational:
		return ErrDatabaseOperational
	case KindNullReference:
		return ErrNullReference
	case KindValidation:
		return ErrValidation
	default:
		return ErrInternal
	}
}

// Message returns the default caller-facing message for the kind. These are
// deliberately generic: envelopes must never leak internals or stack traces.
func (k Kind) Message() string {
	switch k {
	case KindNotFound:
		return "The requested resource was not found"
	case KindDatabaseUnavailable:
		return "The database is currently unavailable"
	case KindDatabaseOperational:
		return "A required database object is missing"
	case KindNullReference:
		return "A required reference was missing"
	case KindValidation:
		return "The request failed validation"
	default:
		return "An unexpected internal error occurred"
	}
}
