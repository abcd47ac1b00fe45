package service

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is the sentinel wrapped by every [ValidationError];
	// callers can match the whole class with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately not
	// distinguished to avoid leaking account existence.
	ErrInvalidCredentials = errors.New("invalid email/password")

	// ErrTokenIsExpiredOrInvalid is returned when a token fails signature,
	// issuer, expiry, or scope checks, or is no longer present in the
	// user's persisted token collection (revoked or user deleted).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when JWT generation fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ValidationError carries the full set of violated input constraints for one
// request, so a client sees everything wrong at once instead of one field at
// a time.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Unwrap makes every ValidationError match ErrValidation via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
