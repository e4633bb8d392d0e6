package commands

import (
	"context"
	"errors"

	"stable-booking/internal/domain/booking"
	domreview "stable-booking/internal/domain/review"
	"stable-booking/internal/infra"
	"stable-booking/internal/pkg/clock"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, riderID uuid.UUID) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *domreview.Services
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{
		uow: uow,
		services: &domreview.Services{
			Clock:              clk,
			EligibilityChecker: domreview.CompletedBookingChecker{},
		},
	}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, riderID uuid.UUID) (*CreateReviewResult, error) {
	if _, err := domreview.NewRating(req.Rating); err != nil {
		return nil, err
	}
	if _, err := domreview.NewComment(req.Comment); err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingForUpdate(ctx, req.BookingID)
		if err != nil {
			return notFoundAs(err, errs.ErrBookingNotFound)
		}
		if snap.RiderID != riderID {
			return errs.ErrForbidden
		}

		now := uc.services.Clock.Now()
		err = uc.services.EligibilityChecker.CanPostReview(domreview.ReviewEligibilityInput{
			BookingID:     snap.ID,
			BookingRider:  snap.RiderID,
			BookingStatus: booking.Status(snap.Status),
			RiderID:       riderID,
			Now:           now,
		})
		if errors.Is(err, domreview.ErrBookingNotEligible) {
			return errs.ErrBookingNotCompleted
		}
		if err != nil {
			return err
		}

		horseID := snap.HorseID
		rev, err := domreview.NewReview(uuid.Nil, snap.ID, riderID, snap.StableID, &horseID, req.Rating, req.Comment, now)
		if err != nil {
			return err
		}

		id, err := tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateReview
			}
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}
