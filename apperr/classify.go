// Package apperr implements the error contract for the API: every fault that
// reaches a request boundary is classified into a Kind, turned into a JSON
// envelope with a stable shape, and emitted as a single log record whose
// severity is derived from the HTTP status code alone.
package apperr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// classification order matters: sentinel checks first, then well-known
// library errors, then driver message heuristics, then the Internal fallback.
var sentinelKinds = []Kind{
	KindNotFound,
	KindValidation,
	KindDatabaseUnavailable,
	KindDatabaseOperational,
	KindNullReference,
	KindInternal,
}

// operationalMarkers are substrings of driver errors that indicate the
// database is reachable but a schema object is missing.
var operationalMarkers = []string{
	"no such table",
	"no such column",
	"does not exist",
}

// unavailableMarkers are substrings of driver errors that indicate the
// database cannot be reached at all.
var unavailableMarkers = []string{
	"connection refused",
	"connection reset",
	"unable to open database",
	"database is locked",
	"bad connection",
}

// Classify resolves a fault to its Kind and HTTP status code. It is total:
// it never panics and never fails, mapping anything it does not recognize to
// KindInternal with status 500.
func Classify(err error) (Kind, int) {
	if err == nil {
		return KindInternal, KindInternal.Status()
	}

	for _, k := range sentinelKinds {
		if errors.Is(err, k.Sentinel()) {
			return k, k.Status()
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound, KindNotFound.Status()
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return KindValidation, KindValidation.Status()
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range operationalMarkers {
		if strings.Contains(msg, marker) {
			return KindDatabaseOperational, KindDatabaseOperational.Status()
		}
	}
	for _, marker := range unavailableMarkers {
		if strings.Contains(msg, marker) {
			return KindDatabaseUnavailable, KindDatabaseUnavailable.Status()
		}
	}

	return KindInternal, KindInternal.Status()
}

// FromPanic converts a recovered panic value into a classifiable error.
// Nil-pointer dereferences become ErrNullReference; any other runtime error
// or arbitrary panic value becomes ErrInternal.
func FromPanic(v interface{}) error {
	switch e := v.(type) {
	case runtime.Error:
		msg := e.Error()
		if strings.Contains(msg, "nil pointer dereference") || strings.Contains(msg, "invalid memory address") {
			return fmt.Errorf("%w: %s", ErrNullReference, msg)
		}
		return fmt.Errorf("%w: %s", ErrInternal, msg)
	case error:
		return e
	default:
		return fmt.Errorf("%w: panic: %v", ErrInternal, v)
	}
}

// Mark wraps err with the sentinel for the given kind, preserving the
// original error chain. A nil err returns the bare sentinel.
func Mark(err error, kind Kind) error {
	if err == nil {
		return kind.Sentinel()
	}
	if k, _ := Classify(err); k == kind {
		return err
	}
	return fmt.Errorf("%w: %w", kind.Sentinel(), err)
}
