package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel markers. Errors built with the builder are marked with one of these
// and matched with errors.Is.
var (
	ErrNotFound   = new(ErrCodeNotFound, "resource not found")
	ErrValidation = new(ErrCodeValidation, "validation error")
	ErrDatabase   = new(ErrCodeDatabase, "database error")
	ErrAuth       = new(ErrCodeAuth, "authentication error")
	ErrSystem     = new(ErrCodeSystemError, "system error")

	statusCodeMap = map[error]int{
		ErrNotFound:   http.StatusNotFound,
		ErrValidation: http.StatusUnprocessableEntity,
		ErrDatabase:   http.StatusInternalServerError,
		ErrAuth:       http.StatusUnauthorized,
		ErrSystem:     http.StatusInternalServerError,
	}
)

const (
	ErrCodeNotFound    = "not_found"
	ErrCodeValidation  = "validation_error"
	ErrCodeDatabase    = "database_error"
	ErrCodeAuth        = "auth_error"
	ErrCodeSystemError = "system_error"
)

// InternalError is a coded domain error.
type InternalError struct {
	Code    string
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is matches on code when target is an InternalError.
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

// HTTPStatusFromErr maps a marked error to a response status. Unmarked errors are 500.
func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// HintOf returns the first user-facing hint attached to err, or fallback.
func HintOf(err error, fallback string) string {
	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		return fallback
	}
	return hints[0]
}
