package commands

import (
	"context"

	"stable-booking/internal/domain/rating"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type HorseCommands interface {
	// AssignTier sets the admin difficulty tier of a horse; nil clears it.
	AssignTier(ctx context.Context, horseID uuid.UUID, tier *string) error
}

type horseUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewHorseUseCase(uow shared.UnitOfWork) HorseCommands {
	return &horseUseCaseImpl{uow: uow}
}

func (uc *horseUseCaseImpl) AssignTier(ctx context.Context, horseID uuid.UUID, tier *string) error {
	var parsed *rating.Tier
	if tier != nil {
		t, err := rating.ParseTier(*tier)
		if err != nil {
			return err
		}
		parsed = &t
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Horses().UpdateTier(ctx, tx.DB(), horseID, parsed); err != nil {
			return notFoundAs(err, errs.ErrHorseNotFound)
		}
		return nil
	})
}
