package request

import (
	"github.com/google/uuid"
)

type ScoreRideRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	// RPS is the rider performance score; range is checked by the use case
	// so that 0 is reported as out of range rather than missing.
	RPS *int `json:"rps" binding:"required"`
}

type LeaderboardQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type AssignTierRequest struct {
	// Tier is Beginner, Intermediate or Advanced; null clears it.
	Tier *string `json:"tier"`
}
