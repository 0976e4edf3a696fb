package errors

import (
	stderrors "errors"
	"fmt"
)

// Error categories reported by add2vals
const (
	// Input errors
	ErrEmptyInput = "EMPTY_INPUT"
	ErrInputRead  = "INPUT_READ_ERROR"

	// Operand errors
	ErrNonNumericOperand = "NON_NUMERIC_OPERAND"

	// Output errors
	ErrInvalidFormat = "INVALID_FORMAT"
	ErrOutputWrite   = "OUTPUT_WRITE_ERROR"
)

// CalcError is a categorized error with optional cause and context
type CalcError struct {
	Type    string
	Message string
	Hint    string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *CalcError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *CalcError) Unwrap() error {
	return e.Cause
}

// New creates a new CalcError
func New(errorType, message string) *CalcError {
	return &CalcError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap creates a new CalcError wrapping an existing error
func Wrap(errorType, message string, cause error) *CalcError {
	e := New(errorType, message)
	e.Cause = cause
	return e
}

// WithContext adds context information to the error
func (e *CalcError) WithContext(key string, value any) *CalcError {
	e.Context[key] = value
	return e
}

// WithHint attaches a suggestion on how to fix the error
func (e *CalcError) WithHint(hint string) *CalcError {
	e.Hint = hint
	return e
}

// GetContext returns context value by key
func (e *CalcError) GetContext(key string) (any, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// Helper functions for common error scenarios

// NewEmptyInputError reports a prompt that received an empty line
func NewEmptyInputError(prompt string) *CalcError {
	return New(ErrEmptyInput, "You must enter a value.").
		WithContext("prompt", prompt)
}

// NewInputError reports a failure reading from the input stream
func NewInputError(prompt string, cause error) *CalcError {
	return Wrap(ErrInputRead, "failed to read input", cause).
		WithContext("prompt", prompt)
}

// NewNonNumericOperandError reports an operand that must be a number but is text
func NewNonNumericOperandError(operation, operand string) *CalcError {
	return New(ErrNonNumericOperand, fmt.Sprintf("%s requires numeric operands, got %q", operation, operand)).
		WithContext("operation", operation).
		WithContext("operand", operand).
		WithHint("Use 'add' to concatenate text values")
}

// NewInvalidFormatError reports an unsupported --format value
func NewInvalidFormatError(format string, supported []string) *CalcError {
	return New(ErrInvalidFormat, fmt.Sprintf("unsupported format %q", format)).
		WithContext("format", format).
		WithContext("supported", supported).
		WithHint(fmt.Sprintf("Supported formats: %v", supported))
}

// NewOutputError reports a failure writing the result
func NewOutputError(cause error) *CalcError {
	return Wrap(ErrOutputWrite, "failed to write output", cause)
}

// IsErrorType checks if err, or any error it wraps, is a CalcError of the given type
func IsErrorType(err error, errorType string) bool {
	var calcErr *CalcError
	if stderrors.As(err, &calcErr) {
		return calcErr.Type == errorType
	}
	return false
}
