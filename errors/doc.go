// Package errors provides unified error handling for spykit.
// It implements structured error types with machine-readable codes for
// the failure modes of spy construction and proxy use.
package errors
