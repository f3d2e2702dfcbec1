package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Organization errors
var (
	ErrCollegeNotFound = errors.New("college not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNotAFaculty     = errors.New("user is not a faculty")
	ErrNoCollege       = errors.New("faculty has no college to be promoted in")
)

// Portfolio errors
var (
	ErrUnknownSection   = errors.New("unknown portfolio section")
	ErrInvalidStatus    = errors.New("review status must be Approved or Rejected")
	ErrFeedbackRequired = errors.New("feedback is required when rejecting an item")
)

// UpstreamError carries the status and human-readable message returned by
// the portfolio API. Handlers relay the message to the caller unchanged;
// when the upstream body has no message field the wrapping call site
// supplies its generic per-action fallback.
type UpstreamError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream request failed with status %d", e.StatusCode)
}

// NewUpstreamError builds an UpstreamError from a response.
func NewUpstreamError(status int, message string) *UpstreamError {
	return &UpstreamError{StatusCode: status, Message: message}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewValidationError creates a CustomError wrapping ErrValidationFailed.
func NewValidationError(message string) *CustomError {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a CustomError wrapping ErrResourceNotFound.
func NewNotFoundError(message string) *CustomError {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
