package types

import "fmt"

// CustomError carries an HTTP status code and a machine-readable error type
// alongside the message. Handlers and the global Fiber error handler render
// it into the standard JSON error envelope.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError reports malformed, missing, or out-of-range input (400).
func NewValidationError(message, errorType string) *CustomError {
	return &CustomError{Code: 400, Message: message, Type: errorType}
}

// NewNotFoundError reports an id-based lookup miss (404).
func NewNotFoundError(message, errorType string) *CustomError {
	return &CustomError{Code: 404, Message: message, Type: errorType}
}

// NewAuthorizationError reports a missing or invalid admin session (401).
func NewAuthorizationError(message, errorType string) *CustomError {
	return &CustomError{Code: 401, Message: message, Type: errorType}
}

// NewPersistenceError reports an underlying store failure (500). The message
// is generic on purpose; the cause is logged, not surfaced to the caller.
func NewPersistenceError(errorType string) *CustomError {
	return &CustomError{Code: 500, Message: "Internal server error", Type: errorType}
}
