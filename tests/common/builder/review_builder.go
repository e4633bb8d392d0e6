//go:build unit || e2e

package builder

import (
	"time"

	domreview "stable-booking/internal/domain/review"
	reqdto "stable-booking/internal/handler/dto/request"
	"stable-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	BookingID uuid.UUID
	RiderID   uuid.UUID
	StableID  uuid.UUID
	HorseID   *uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	horseID := uuid.New()
	return &ReviewBuilder{
		BookingID: uuid.New(),
		RiderID:   uuid.New(),
		StableID:  uuid.New(),
		HorseID:   &horseID,
		Rating:    5,
		Comment:   "Gentle horse and friendly staff",
		CreatedAt: time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.BookingID, r.RiderID, r.StableID, r.HorseID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
