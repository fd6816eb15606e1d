package database

import "errors"

// Kind classifies the errors produced by the auction core. Every failed
// operation aborts with no partial mutation and reports exactly one kind.
type Kind string

// Set of error kinds for the auction core.
const (
	KindValidation    Kind = "validation"    // Malformed or zero-valued inputs.
	KindAuthorization Kind = "authorization" // Caller lacks the required identity or role.
	KindState         Kind = "state"         // Operation invalid for the current auction phase.
	KindTransfer      Kind = "transfer"      // The asset registry rejected a transfer.
)

// Error represents a classified failure with a human-readable reason.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

// NewValidationError constructs an error for malformed inputs.
func NewValidationError(reason string) error {
	return &Error{Kind: KindValidation, Reason: reason}
}

// NewAuthorizationError constructs an error for callers lacking a
// required identity or role.
func NewAuthorizationError(reason string) error {
	return &Error{Kind: KindAuthorization, Reason: reason}
}

// NewStateError constructs an error for operations invalid in the
// auction's current phase.
func NewStateError(reason string) error {
	return &Error{Kind: KindState, Reason: reason}
}

// NewTransferError constructs an error for a rejected registry transfer,
// keeping the registry's failure as the underlying error.
func NewTransferError(reason string, err error) error {
	return &Error{Kind: KindTransfer, Reason: reason, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Reason
}

// Unwrap returns the underlying registry error when one exists.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether the error carries the specified kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
