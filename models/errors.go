package models

import (
	"errors"
)

// Storage-level sentinels. Repositories translate driver errors to these;
// services map them onto the API taxonomy below.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// APIError is the request-boundary error taxonomy. Every handler renders it
// as {"error": message} with the carried status code.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func ValidationError(message string) *APIError {
	return &APIError{Status: 400, Message: message}
}

func AuthError(message string) *APIError {
	return &APIError{Status: 401, Message: message}
}

func ForbiddenError(message string) *APIError {
	return &APIError{Status: 403, Message: message}
}

func NotFoundError(message string) *APIError {
	return &APIError{Status: 404, Message: message}
}

func ConflictError(message string) *APIError {
	return &APIError{Status: 409, Message: message}
}
