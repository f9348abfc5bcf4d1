package errors

import "fmt"

// ErrorCode represents the CLI error codes
type ErrorCode int

const (
	// CodeGeneric represents a generic failure (code 1)
	CodeGeneric ErrorCode = 1
	// CodeHTTP represents a non-2xx API response, surfaced after the retry
	// budget is exhausted (code 2)
	CodeHTTP ErrorCode = 2
	// CodeNetwork represents connection-level failures such as DNS errors,
	// refused connections, or timeouts (code 3)
	CodeNetwork ErrorCode = 3
	// CodeNotFound represents a lookup that matched no catalog entry (code 4)
	CodeNotFound ErrorCode = 4
)

// CLIError represents a CLI error with a specific error code
type CLIError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewGenericError creates a new generic error (code 1)
func NewGenericError(message string, cause error) *CLIError {
	return &CLIError{
		Code:    CodeGeneric,
		Message: message,
		Cause:   cause,
	}
}

// NewHTTPError creates a new HTTP-status error (code 2)
func NewHTTPError(message string, cause error) *CLIError {
	return &CLIError{
		Code:    CodeHTTP,
		Message: message,
		Cause:   cause,
	}
}

// NewNetworkError creates a new network error (code 3)
func NewNetworkError(message string, cause error) *CLIError {
	return &CLIError{
		Code:    CodeNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError creates a new not-found error (code 4)
func NewNotFoundError(message string) *CLIError {
	return &CLIError{
		Code:    CodeNotFound,
		Message: message,
	}
}
