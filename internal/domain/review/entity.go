package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	bookingID uuid.UUID
	riderID   uuid.UUID
	stableID  uuid.UUID
	horseID   *uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(id, bookingID, riderID, stableID uuid.UUID, horseID *uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		bookingID: bookingID,
		riderID:   riderID,
		stableID:  stableID,
		horseID:   horseID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) RiderID() uuid.UUID   { return r.riderID }
func (r *Review) StableID() uuid.UUID  { return r.stableID }
func (r *Review) HorseID() *uuid.UUID  { return r.horseID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
