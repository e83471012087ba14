package service

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrForbidden       = errors.New("not allowed for this role")
	ErrNotPending      = errors.New("coupon is no longer pending")
	ErrNotApproved     = errors.New("coupon is not approved")
	ErrQuotaExceeded   = errors.New("job posting limit reached")
	ErrNoChange        = errors.New("status unchanged")
	ErrReadOnlyCatalog = errors.New("catalog is read-only")
	ErrLoginRejected   = errors.New("login rejected")
)

// ValidationError carries the message shown to the admin. It matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// Form messages.
const (
	msgRequiredFields   = "Please fill all required fields"
	msgPasswordMismatch = "Passwords do not match"
	msgPasswordShort    = "Password must be at least 6 characters"
	msgAddressFields    = "Please fill all address fields"
)

const minPasswordLen = 6
