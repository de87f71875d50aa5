package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Shape errors
const (
	// ErrCodeArityMismatch indicates a tuple and a list of functions of different lengths.
	ErrCodeArityMismatch ErrorCode = "ARITY_MISMATCH"
	// ErrCodeTypeMismatch indicates a value of an unexpected type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
)

// Registry errors
const (
	// ErrCodeNotFound indicates the requested entry was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the entry already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates the configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
