package review

import (
	"time"

	"stable-booking/internal/domain/booking"
	"stable-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker ReviewEligibilityChecker
}

type ReviewEligibilityInput struct {
	BookingID     uuid.UUID
	BookingRider  uuid.UUID
	BookingStatus booking.Status
	RiderID       uuid.UUID
	Now           time.Time
}

type ReviewEligibilityChecker interface {
	CanPostReview(input ReviewEligibilityInput) error
}

// CompletedBookingChecker allows one review per completed ride, by its rider.
type CompletedBookingChecker struct{}

func (CompletedBookingChecker) CanPostReview(in ReviewEligibilityInput) error {
	if in.BookingRider != in.RiderID {
		return ErrBookingNotEligible
	}
	if in.BookingStatus != booking.StatusCompleted {
		return ErrBookingNotEligible
	}
	return nil
}
