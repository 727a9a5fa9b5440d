package helper

import "errors"

// Sentinel errors for the booking core. Handlers map these onto HTTP
// statuses; anything unwrapped is a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrIncompatibleLayout = errors.New("incompatible cabin layout")
	ErrInvalidChain       = errors.New("invalid route chain")
	ErrScheduleConflict   = errors.New("schedule conflict")
	ErrSeatUnavailable    = errors.New("seat unavailable")
	ErrPolicyMissing      = errors.New("policy missing")
	ErrValidation         = errors.New("validation failed")
)
