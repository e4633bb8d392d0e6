package commands

import (
	"context"

	"stable-booking/internal/domain/booking"
	"stable-booking/internal/domain/rating"
	"stable-booking/internal/infra"
	"stable-booking/internal/pkg/clock"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/pkg/metrics"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScoreRideRequest struct {
	BookingID uuid.UUID
	Score     int
}

type ScoreRideResult struct {
	RiderID           uuid.UUID
	RiderPointsChange int
	NewRiderPoints    int
	RiderTier         string
}

type ScoringCommands interface {
	ScoreRide(ctx context.Context, req ScoreRideRequest, actor Actor) (*ScoreRideResult, error)
}

type scoringUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewScoringUseCase(uow shared.UnitOfWork, clk clock.Clock) ScoringCommands {
	return &scoringUseCaseImpl{uow: uow, clock: clk}
}

func (uc *scoringUseCaseImpl) ScoreRide(ctx context.Context, req ScoreRideRequest, actor Actor) (*ScoreRideResult, error) {
	score, err := rating.NewPerformanceScore(req.Score)
	if err != nil {
		return nil, err
	}

	var (
		result    *ScoreRideResult
		horseTier rating.Tier
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingForUpdate(ctx, req.BookingID)
		if err != nil {
			return notFoundAs(err, errs.ErrBookingNotFound)
		}
		if snap.StableOwnerID != actor.ID {
			return errs.ErrForbidden
		}
		if booking.Status(snap.Status) == booking.StatusCancelled {
			return errs.ErrBookingCancelled
		}
		if snap.StartTime.After(uc.clock.Now()) {
			return errs.ErrRideNotStarted
		}
		var toComplete *booking.Booking
		if booking.Status(snap.Status) == booking.StatusConfirmed {
			if toComplete, err = reconstructBooking(snap); err != nil {
				return err
			}
		}
		if snap.HorseTier == nil {
			return rating.ErrHorseTierMissing
		}
		horseTier, err = rating.ParseTier(*snap.HorseTier)
		if err != nil {
			return rating.ErrHorseTierMissing
		}

		scored, err := tx.Reads().RideResultExists(ctx, snap.ID)
		if err != nil {
			return err
		}
		if scored {
			return errs.ErrAlreadyScored
		}

		rider, err := tx.Riders().FindForUpdate(ctx, tx.DB(), snap.RiderID)
		if err != nil {
			return notFoundAs(err, errs.ErrRiderNotFound)
		}

		outcome := rating.Calculate(rider.RankPoints().Value(), horseTier, score)
		if err := rider.SetRankPoints(outcome.NewPoints); err != nil {
			return err
		}

		tierID, err := tx.Riders().EnsureTier(ctx, tx.DB(), rating.BandFor(outcome.Tier))
		if err != nil {
			return err
		}
		if err := tx.Riders().UpdateRating(ctx, tx.DB(), rider, tierID); err != nil {
			return err
		}

		now := uc.clock.Now()
		ride := rating.NewRideResult(snap.ID, snap.RiderID, snap.HorseID, snap.StableID, score, outcome, now)
		if _, err := tx.RideResults().Create(ctx, tx.DB(), ride); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrAlreadyScored
			}
			return err
		}

		if toComplete != nil {
			if err := toComplete.Complete(now); err != nil {
				return err
			}
			if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), toComplete); err != nil {
				return err
			}
		}

		result = &ScoreRideResult{
			RiderID:           snap.RiderID,
			RiderPointsChange: outcome.Delta,
			NewRiderPoints:    outcome.NewPoints,
			RiderTier:         outcome.Tier.String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordScoredRide(horseTier.String(), result.RiderPointsChange)
	return result, nil
}
