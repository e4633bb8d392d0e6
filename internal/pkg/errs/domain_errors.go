package errs

import "errors"

// Use-case sentinels shared by the command and query sides; handlers map them
// to HTTP statuses.
var (
	// Lookup errors
	ErrStableNotFound  = errors.New("stable not found")
	ErrHorseNotFound   = errors.New("horse not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRiderNotFound   = errors.New("rider not found")

	// Permission errors
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("authentication required")

	// Booking errors
	ErrBookingConflict      = errors.New("horse already booked for this time")
	ErrSessionCapReached    = errors.New("horse session limit reached")
	ErrSlotUnavailable      = errors.New("slot not offered by this stable")
	ErrSlotInPast           = errors.New("slot start is in the past")
	ErrInsufficientLeadTime = errors.New("insufficient lead time")
	ErrHorseInactive        = errors.New("horse is not active")
	ErrInvalidTransition    = errors.New("booking status does not allow this change")

	// Scoring errors
	ErrBookingCancelled = errors.New("booking has been cancelled")
	ErrRideNotStarted   = errors.New("ride has not started yet")
	ErrAlreadyScored    = errors.New("ride already scored")

	// Review errors
	ErrBookingNotCompleted = errors.New("booking not completed")
	ErrDuplicateReview     = errors.New("booking already reviewed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
