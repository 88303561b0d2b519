package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Auth gateway taxonomy. Raw provider codes are mapped to these in exactly
// one place (the firebase adapter); handlers and callers only ever see these.

func InvalidCredentials(err error) *AppError {
	return &AppError{
		Code:    "INVALID_CREDENTIALS",
		Message: "Email or password is incorrect",
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func EmailInUse(err error) *AppError {
	return &AppError{
		Code:    "EMAIL_IN_USE",
		Message: "An account with this email already exists",
		Status:  http.StatusConflict,
		Err:     err,
	}
}

func WeakPassword(err error) *AppError {
	return &AppError{
		Code:    "WEAK_PASSWORD",
		Message: "Password does not meet the minimum requirements",
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func AccountDisabled(err error) *AppError {
	return &AppError{
		Code:    "ACCOUNT_DISABLED",
		Message: "This account has been disabled",
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func UserNotFound(err error) *AppError {
	return &AppError{
		Code:    "USER_NOT_FOUND",
		Message: "No account exists for this email",
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func RateLimited(err error) *AppError {
	return &AppError{
		Code:    "RATE_LIMITED",
		Message: "Too many attempts, please try again later",
		Status:  http.StatusTooManyRequests,
		Err:     err,
	}
}

func NetworkUnavailable(err error) *AppError {
	return &AppError{
		Code:    "NETWORK_UNAVAILABLE",
		Message: "The authentication service is unreachable",
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

func UserCancelled(err error) *AppError {
	return &AppError{
		Code:    "USER_CANCELLED",
		Message: "The sign-in attempt was cancelled",
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unknown(err error) *AppError {
	return &AppError{
		Code:    "UNKNOWN",
		Message: "An unexpected error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
