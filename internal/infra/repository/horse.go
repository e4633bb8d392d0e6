package repository

import (
	"context"

	"stable-booking/internal/domain/rating"
	"stable-booking/internal/infra"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HorseWriteQueries interface {
	UpdateHorseTier(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHorseTierParams) (int64, error)
}

type HorseRepository struct {
	queries HorseWriteQueries
}

func NewHorseRepository(queries HorseWriteQueries) *HorseRepository {
	return &HorseRepository{queries: queries}
}

// UpdateTier sets the admin tier; a nil tier clears it.
func (r *HorseRepository) UpdateTier(ctx context.Context, tx sqlc.DBTX, horseID uuid.UUID, tier *rating.Tier) error {
	value := pgtype.Text{}
	if tier != nil {
		value = pgconv.StringToPgtype(tier.String())
	}
	n, err := r.queries.UpdateHorseTier(ctx, tx, sqlc.UpdateHorseTierParams{ID: horseID, AdminTier: value})
	if err != nil {
		return infra.WrapRepoErr("failed to update horse tier", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("horse not found", nil, infra.KindNotFound)
	}
	return nil
}
