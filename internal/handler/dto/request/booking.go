package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HorseID   uuid.UUID `json:"horseId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
}

type ListBookingsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
