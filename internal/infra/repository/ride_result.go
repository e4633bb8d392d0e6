package repository

import (
	"context"

	"stable-booking/internal/domain/rating"
	"stable-booking/internal/domain/user"
	"stable-booking/internal/infra"
	"stable-booking/internal/infra/repository/converter"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RideResultWriteQueries interface {
	CreateRideResult(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRideResultParams) (uuid.UUID, error)
}

type RideResultRepository struct {
	queries RideResultWriteQueries
}

func NewRideResultRepository(queries RideResultWriteQueries) *RideResultRepository {
	return &RideResultRepository{queries: queries}
}

func (r *RideResultRepository) Create(ctx context.Context, tx sqlc.DBTX, result *rating.RideResult) (uuid.UUID, error) {
	id, err := r.queries.CreateRideResult(ctx, tx, converter.RideResultToCreateParams(result))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ride result", err)
	}
	return id, nil
}

type RiderWriteQueries interface {
	GetRiderForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRiderForUpdateRow, error)
	EnsureRiderTier(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureRiderTierParams) (uuid.UUID, error)
	UpdateRiderRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRiderRatingParams) (int64, error)
}

type RiderRepository struct {
	queries RiderWriteQueries
}

func NewRiderRepository(queries RiderWriteQueries) *RiderRepository {
	return &RiderRepository{queries: queries}
}

func (r *RiderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, riderID uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetRiderForUpdate(ctx, tx, riderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rider", err)
	}
	rider, err := user.ReconstructRider(row.ID, row.Name, int(row.RankPoints))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid rider row", err, infra.KindDBFailure)
	}
	return rider, nil
}

// EnsureTier returns the id of the tier row for band, creating it on first use.
func (r *RiderRepository) EnsureTier(ctx context.Context, tx sqlc.DBTX, band rating.Band) (uuid.UUID, error) {
	id, err := r.queries.EnsureRiderTier(ctx, tx, sqlc.EnsureRiderTierParams{
		Name:      band.Tier.String(),
		MinPoints: pgconv.IntToInt32(band.Min),
		MaxPoints: pgconv.IntToInt32(band.Max),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to ensure rider tier", err)
	}
	return id, nil
}

func (r *RiderRepository) UpdateRating(ctx context.Context, tx sqlc.DBTX, rider *user.User, tierID uuid.UUID) error {
	n, err := r.queries.UpdateRiderRating(ctx, tx, sqlc.UpdateRiderRatingParams{
		ID:          rider.ID(),
		RankPoints:  pgconv.IntToInt32(rider.RankPoints().Value()),
		RiderTierID: pgconv.UUIDToPgtype(tierID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update rider rating", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("rider not found", nil, infra.KindNotFound)
	}
	return nil
}
