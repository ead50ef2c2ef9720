package models

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ValidationError reports input that violates a model constraint.
// Nothing is written when it is returned.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a validation error with the given messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// ErrorResponse is the body returned for lookups that fail
type ErrorResponse struct {
	Error string `json:"error" example:"Restaurant not found"`
}

// ErrorsResponse is the body returned when creating a resource fails
type ErrorsResponse struct {
	Errors []string `json:"errors" example:"price must be between 1 and 30"`
}

// NewErrorsResponse wraps messages in an ErrorsResponse
func NewErrorsResponse(messages ...string) ErrorsResponse {
	return ErrorsResponse{Errors: messages}
}
