package request

import (
	"time"
)

type ListSlotsQuery struct {
	Date    string `form:"date" binding:"required"`
	HorseID string `form:"horseId"`
}

type CreateSlotsRequest struct {
	Date      string    `json:"date" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	HorseID   string    `json:"horseId" binding:"required"`
	// Duration is accepted for client compatibility; slot length comes from
	// startTime and endTime.
	Duration *int `json:"duration,omitempty"`
}
