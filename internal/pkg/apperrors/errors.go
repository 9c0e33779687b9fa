package apperrors

import "errors"

// Authentication errors
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrOracleUnavailable = errors.New("identity oracle unavailable")
)

// Authorization errors
var (
	// ErrForbidden covers both "no role record" and "wrong role"; the two
	// cases are never distinguished to the caller.
	ErrForbidden = errors.New("forbidden")
)

// Attendance write errors
var (
	ErrEmptyBatch    = errors.New("attendance batch is empty")
	ErrBatchRejected = errors.New("attendance batch rejected by store")
)

// Payment errors
var (
	ErrOrderCreateFailed = errors.New("gateway order creation failed")
	ErrInvalidSignature  = errors.New("payment signature verification failed")
)

// Record and request errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// CustomError represents application-specific errors with additional context.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err with a message.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewBadRequestError creates a bad request error with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
