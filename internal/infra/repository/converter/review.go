package converter

import (
	"stable-booking/internal/domain/rating"
	"stable-booking/internal/domain/review"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		BookingID: r.BookingID(),
		RiderID:   r.RiderID(),
		StableID:  r.StableID(),
		HorseID:   pgconv.UUIDPtrToPgtype(r.HorseID()),
		Rating:    pgconv.IntToInt32(r.Rating().Value()),
		Comment:   r.Comment().String(),
	}
}

func RideResultToCreateParams(r *rating.RideResult) sqlc.CreateRideResultParams {
	return sqlc.CreateRideResultParams{
		BookingID:        r.BookingID(),
		RiderID:          r.RiderID(),
		HorseID:          r.HorseID(),
		StableID:         r.StableID(),
		PerformanceScore: pgconv.IntToInt32(r.Score().Value()),
		PointsChange:     pgconv.IntToInt32(r.PointsChange()),
	}
}
