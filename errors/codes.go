package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Target errors
const (
	// ErrCodeInvalidTarget indicates the spy target is not a class-like
	// (struct) type: a function, an already-constructed instance, or a
	// non-struct type.
	ErrCodeInvalidTarget ErrorCode = "INVALID_TARGET"
)

// Proxy errors
const (
	// ErrCodeContractViolation indicates a proxy call to a member that is
	// not part of the target's contract.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeInvalidConfig indicates the proxy configuration failed
	// validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidArgument indicates a forwarded call received an
	// argument the real method cannot accept.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Construction failures deliberately carry no code: errors raised while
// instantiating a target propagate to the caller verbatim, unwrapped.
