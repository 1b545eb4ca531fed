package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures so transports can map them without string matching.
type ErrorKind string

const (
	KindValidation          ErrorKind = "validation_error"
	KindUnsupportedTier     ErrorKind = "unsupported_tier"
	KindSlotUnavailable     ErrorKind = "slot_unavailable"
	KindActiveBookingExists ErrorKind = "active_booking_exists"
	KindNotFound            ErrorKind = "not_found"
	KindAlreadyTerminal     ErrorKind = "already_terminal"
	KindTimeout             ErrorKind = "timeout"
	KindUnauthorized        ErrorKind = "unauthorized"
)

// AppError is a recoverable domain error.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// KindOf returns the kind of the first AppError in err's chain, or "" when there is none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status code a handler should answer with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindUnsupportedTier:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindSlotUnavailable, KindActiveBookingExists, KindAlreadyTerminal:
		return http.StatusConflict
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
