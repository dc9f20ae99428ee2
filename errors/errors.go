// Package errors provides unified error handling for spykit.
// It implements structured error types with machine-readable codes for
// the failure modes of spy construction and proxy use.
package errors

import (
	stderrors "errors"
	"fmt"
)

// SpyError is the unified spykit error type.
type SpyError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *SpyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *SpyError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *SpyError) WithCause(cause error) *SpyError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *SpyError) WithDetails(details map[string]any) *SpyError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *SpyError) WithDetail(key string, value any) *SpyError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new SpyError.
func New(code ErrorCode, message string) *SpyError {
	return &SpyError{Code: code, Message: message}
}

// IsCode reports whether err is (or wraps) a SpyError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var se *SpyError
	if stderrors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// --- Common Error Constructors ---

// InvalidTarget creates a new SpyError for a target that cannot be spied on.
func InvalidTarget(reason string) *SpyError {
	return &SpyError{
		Code: ErrCodeInvalidTarget, Message: fmt.Sprintf("The target must be a class-like type - %s.", reason),
	}
}

// FunctionTarget creates a new SpyError for a target that is a plain
// function rather than a class-like type.
func FunctionTarget() *SpyError {
	return InvalidTarget("received a function, not a class-like type")
}

// InstanceTarget creates a new SpyError for a target that is already a
// constructed instance. The instance's runtime type is named both as what
// was received and as the expected form so the mismatch explains itself.
func InstanceTarget(typeName string) *SpyError {
	return &SpyError{
		Code: ErrCodeInvalidTarget, Message: fmt.Sprintf("Received an instance of %s(), expected target=%s.", typeName, typeName),
		Details: map[string]any{"received": typeName, "expected": typeName},
	}
}

// ContractViolation creates a new SpyError for a proxy call outside the
// target's contract.
func ContractViolation(member, target string) *SpyError {
	return &SpyError{
		Code: ErrCodeContractViolation, Message: fmt.Sprintf("%s is not part of %s's contract.", member, target),
		Details: map[string]any{"member": member, "target": target},
	}
}

// InvalidConfig creates a new SpyError for a proxy configuration that
// failed validation.
func InvalidConfig(reason string) *SpyError {
	return &SpyError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid proxy configuration: %s", reason),
	}
}

// InvalidArgument creates a new SpyError for a forwarded call whose
// arguments do not fit the real method.
func InvalidArgument(method, reason string) *SpyError {
	return &SpyError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Cannot forward call to %s: %s", method, reason),
		Details: map[string]any{"method": method},
	}
}
