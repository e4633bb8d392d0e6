package repository

import (
	"context"

	"stable-booking/internal/domain/review"
	"stable-booking/internal/infra"
	"stable-booking/internal/infra/repository/converter"
	sqlc "stable-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (uuid.UUID, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	id, err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}
