// Package apperrors defines the failure kinds every mutation can surface and
// their HTTP mapping. Controllers classify with errors.Is against the
// sentinels; messages that reach the client are carried alongside so that
// auth-adjacent paths can stay deliberately generic.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthenticated   = errors.New("you must be signed in")
	ErrForbidden         = errors.New("you don't have permission to do that")
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("invalid input")
	ErrTokenExpired      = errors.New("this token is either invalid or expired")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrInconsistentState = errors.New("inconsistent state")
)

// ErrBadCredentials is the uniform signin/reset-request failure. One message
// for "no such email" and "wrong password" so responses never confirm
// whether an account exists.
var ErrBadCredentials = New(ErrValidation, "invalid email or password")

type appError struct {
	kind error
	msg  string
}

func (e *appError) Error() string { return e.msg }
func (e *appError) Unwrap() error { return e.kind }

// New builds an error of the given kind with a caller-visible message.
func New(kind error, msg string) error {
	return &appError{kind: kind, msg: msg}
}

func Newf(kind error, format string, args ...any) error {
	return &appError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Status maps an error to the HTTP status controllers respond with.
// InconsistentState deliberately maps to 500: the caller must not read the
// response as an invitation to retry.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrTokenExpired):
		return http.StatusBadRequest
	case errors.Is(err, ErrPaymentFailed):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
