package app

import "fmt"

// AppErrorType represents the type of pipeline error.
type AppErrorType int

const (
	// StructuralError indicates the package layout cannot support the
	// requested operation (missing directory, templates without a
	// property document).
	StructuralError AppErrorType = iota
	// ParseError indicates input that could not be parsed (a malformed
	// override, or template source the engine rejects).
	ParseError
	// IOError indicates a filesystem read, scan, or write failure.
	IOError
)

// AppError represents a fatal pipeline failure.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewStructuralError creates a structural error.
func NewStructuralError(message string, cause error) *AppError {
	return NewAppError(StructuralError, message, cause)
}

// NewParseError creates a parse error.
func NewParseError(message string, cause error) *AppError {
	return NewAppError(ParseError, message, cause)
}

// NewIOError creates an I/O error.
func NewIOError(message string, cause error) *AppError {
	return NewAppError(IOError, message, cause)
}
