package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Structural invariant errors (client-correctable)
	ErrInvariantViolation = errors.New("invariant violation")

	// User errors
	ErrUserNotFound       = fmt.Errorf("user %w", ErrResourceNotFound)
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Course hierarchy errors. All not-found sentinels wrap
// ErrResourceNotFound so the HTTP layer can map them in one branch.
var (
	ErrCourseNotFound      = fmt.Errorf("course %w", ErrResourceNotFound)
	ErrModuleNotFound      = fmt.Errorf("module %w", ErrResourceNotFound)
	ErrLessonNotFound      = fmt.Errorf("lesson %w", ErrResourceNotFound)
	ErrContentItemNotFound = fmt.Errorf("content item %w", ErrResourceNotFound)
	ErrLiveSessionNotFound = fmt.Errorf("live session %w", ErrResourceNotFound)
)

// Assessment errors
var (
	ErrQuizNotFound       = fmt.Errorf("quiz %w", ErrResourceNotFound)
	ErrQuestionNotFound   = fmt.Errorf("question %w", ErrResourceNotFound)
	ErrSubmissionNotFound = fmt.Errorf("quiz submission %w", ErrResourceNotFound)
	ErrAnswerNotFound     = fmt.Errorf("answer %w", ErrResourceNotFound)
)

// Enrollment and billing errors
var (
	ErrPaymentNotFound    = fmt.Errorf("payment %w", ErrResourceNotFound)
	ErrEnrollmentNotFound = fmt.Errorf("enrollment %w", ErrResourceNotFound)
	ErrPaymentAlreadyUsed = errors.New("payment already backs another enrollment")
	ErrCapstoneNotFound   = fmt.Errorf("capstone project %w", ErrResourceNotFound)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewInvariantError creates a new custom error for a broken structural invariant
func NewInvariantError(message string) error {
	return &CustomError{
		Err:     ErrInvariantViolation,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
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
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
