package booking

import (
	"errors"
	"time"

	"stable-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidTransition = errors.New("booking status does not allow this change")
	ErrInvalidStatus     = errors.New("invalid booking status")
)

type HorseSpec struct {
	ID                uuid.UUID
	StableID          uuid.UUID
	PricePerHourCents int
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Booking struct {
	id          uuid.UUID
	riderID     uuid.UUID
	horseID     uuid.UUID
	stableID    uuid.UUID
	timeSlot    TimeSlot
	price       Money
	commission  Money
	status      Status
	cancelledBy *CancelledBy
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(services *Services, horse HorseSpec, riderID uuid.UUID, slot TimeSlot) (*Booking, error) {
	if horse.PricePerHourCents < 0 {
		return nil, ErrNegativePrice
	}

	price := services.PriceCalculator.CalculatePrice(horse.PricePerHourCents, slot)
	commission := services.PriceCalculator.CalculateCommission(price)
	now := services.Clock.Now()

	return &Booking{
		id:         uuid.New(),
		riderID:    riderID,
		horseID:    horse.ID,
		stableID:   horse.StableID,
		timeSlot:   slot,
		price:      price,
		commission: commission,
		status:     StatusConfirmed,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, riderID, horseID, stableID uuid.UUID,
	timeSlot TimeSlot,
	price, commission Money,
	status Status,
	cancelledBy *CancelledBy,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		riderID:     riderID,
		horseID:     horseID,
		stableID:    stableID,
		timeSlot:    timeSlot,
		price:       price,
		commission:  commission,
		status:      status,
		cancelledBy: cancelledBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Cancel moves a confirmed booking to cancelled.
func (b *Booking) Cancel(by CancelledBy, now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.cancelledBy = &by
	b.updatedAt = now
	return nil
}

// Complete moves a confirmed booking to completed. Completing an already
// completed booking is a no-op.
func (b *Booking) Complete(now time.Time) error {
	switch b.status {
	case StatusCompleted:
		return nil
	case StatusConfirmed:
		b.status = StatusCompleted
		b.updatedAt = now
		return nil
	default:
		return ErrInvalidTransition
	}
}

func (b *Booking) IsLive() bool {
	return b.status.IsLive()
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) RiderID() uuid.UUID        { return b.riderID }
func (b *Booking) HorseID() uuid.UUID        { return b.horseID }
func (b *Booking) StableID() uuid.UUID       { return b.stableID }
func (b *Booking) TimeSlot() TimeSlot        { return b.timeSlot }
func (b *Booking) Price() Money              { return b.price }
func (b *Booking) Commission() Money         { return b.commission }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CancelledBy() *CancelledBy { return b.cancelledBy }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
