package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stable-booking/internal/domain/booking"
	"stable-booking/internal/domain/slot"
	"stable-booking/internal/infra"
	"stable-booking/internal/pkg/clock"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/pkg/metrics"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HorseID   uuid.UUID
	StartTime time.Time
}

type CreateBookingResult struct {
	BookingID       uuid.UUID
	HorseID         uuid.UUID
	StableID        uuid.UUID
	StartTime       time.Time
	EndTime         time.Time
	PriceCents      int
	CommissionCents int
	Status          string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, riderID uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor Actor) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings SlotSettings
	prices   booking.PriceCalculator
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, settings SlotSettings, prices booking.PriceCalculator) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		clock:    clk,
		settings: settings,
		prices:   prices,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, riderID uuid.UUID) (*CreateBookingResult, error) {
	loc := uc.settings.Location
	services := &booking.Services{Clock: uc.clock, PriceCalculator: uc.prices}

	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		horse, err := tx.Reads().HorseByID(ctx, req.HorseID)
		if err != nil {
			return notFoundAs(err, errs.ErrHorseNotFound)
		}
		if !horse.IsActive {
			return errs.ErrHorseInactive
		}

		st, err := tx.Reads().StableByID(ctx, horse.StableID)
		if err != nil {
			return notFoundAs(err, errs.ErrStableNotFound)
		}
		policy := uc.settings.policyFor(st)

		date := slot.DateOf(req.StartTime.In(loc))
		if err := tx.Slots().Lock(ctx, tx.DB(), slot.LockKey(st.ID, date)); err != nil {
			return err
		}

		dayStart, dayEnd := date.Bounds(loc)
		live, err := tx.Slots().LiveBookings(ctx, tx.DB(), st.ID, dayStart, dayEnd, &horse.ID)
		if err != nil {
			return err
		}

		engine := slot.NewWelfareEngine(policy, loc)
		if err := engine.CheckBookable(req.StartTime, live[horse.ID], uc.clock.Now()); err != nil {
			return bookabilityError(err)
		}

		ts, err := booking.NewTimeSlot(req.StartTime, req.StartTime.Add(slot.SlotLength))
		if err != nil {
			return err
		}
		b, err := booking.NewBooking(services, booking.HorseSpec{
			ID:                horse.ID,
			StableID:          horse.StableID,
			PricePerHourCents: horse.PricePerHourCents,
		}, riderID, ts)
		if err != nil {
			return err
		}

		if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return err
		}
		if err := tx.Slots().AttachBooking(ctx, tx.DB(), b, date); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		metrics.RecordBooking(bookingOutcome(err))
		return nil, err
	}
	metrics.RecordBooking("created")

	return &CreateBookingResult{
		BookingID:       created.ID(),
		HorseID:         created.HorseID(),
		StableID:        created.StableID(),
		StartTime:       created.TimeSlot().Start(),
		EndTime:         created.TimeSlot().End(),
		PriceCents:      created.Price().Cents(),
		CommissionCents: created.Commission().Cents(),
		Status:          created.Status().String(),
	}, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor Actor) error {
	var by booking.CancelledBy
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingForUpdate(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, errs.ErrBookingNotFound)
		}

		switch {
		case snap.RiderID == actor.ID:
			by = booking.CancelledByRider
		case actor.IsAdmin() || snap.StableOwnerID == actor.ID:
			by = booking.CancelledByStable
		default:
			return errs.ErrForbidden
		}

		b, err := reconstructBooking(snap)
		if err != nil {
			return err
		}
		if err := b.Cancel(by, uc.clock.Now()); err != nil {
			return errs.ErrInvalidTransition
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), b)
	})
	if err != nil {
		return err
	}
	metrics.RecordCancellation(by.String())
	return nil
}

func reconstructBooking(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	ts, err := booking.NewTimeSlot(snap.StartTime, snap.EndTime)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", snap.ID, err)
	}
	price, err := booking.NewMoneyFromInt(snap.PriceCents)
	if err != nil {
		return nil, fmt.Errorf("booking %s price: %w", snap.ID, err)
	}
	commission, err := booking.NewMoneyFromInt(snap.CommissionCents)
	if err != nil {
		return nil, fmt.Errorf("booking %s commission: %w", snap.ID, err)
	}
	return booking.ReconstructBooking(
		snap.ID, snap.RiderID, snap.HorseID, snap.StableID,
		ts, price, commission,
		booking.Status(snap.Status), nil,
		snap.CreatedAt, snap.CreatedAt,
	), nil
}

func bookabilityError(err error) error {
	switch {
	case errors.Is(err, slot.ErrNotPolicyHour):
		return errs.ErrSlotUnavailable
	case errors.Is(err, slot.ErrStartInPast):
		return errs.ErrSlotInPast
	case errors.Is(err, slot.ErrOverlap):
		return errs.ErrBookingConflict
	case errors.Is(err, slot.ErrSessionFull):
		return errs.ErrSessionCapReached
	case errors.Is(err, slot.ErrLeadTimeNotMet):
		return errs.ErrInsufficientLeadTime
	default:
		return err
	}
}

func bookingOutcome(err error) string {
	switch {
	case errors.Is(err, errs.ErrBookingConflict):
		return "conflict"
	case errors.Is(err, errs.ErrSessionCapReached):
		return "session_full"
	case errors.Is(err, errs.ErrSlotUnavailable), errors.Is(err, errs.ErrSlotInPast), errors.Is(err, errs.ErrInsufficientLeadTime):
		return "rejected"
	default:
		return "error"
	}
}
