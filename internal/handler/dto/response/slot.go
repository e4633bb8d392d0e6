package response

import (
	"time"

	"stable-booking/internal/domain/slot"

	"github.com/google/uuid"
)

type SlotBooking struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	RiderName string    `json:"riderName,omitempty"`
}

type SlotResponse struct {
	ID        uuid.UUID    `json:"id"`
	StableID  uuid.UUID    `json:"stableId"`
	HorseID   uuid.UUID    `json:"horseId"`
	HorseName string       `json:"horseName"`
	Date      string       `json:"date"`
	StartTime time.Time    `json:"startTime"`
	EndTime   time.Time    `json:"endTime"`
	Status    string       `json:"status"`
	Booking   *SlotBooking `json:"booking,omitempty"`
}

type CreateSlotsResponse struct {
	Created int `json:"created"`
}

func FromSlotViews(views []slot.View) []SlotResponse {
	out := make([]SlotResponse, len(views))
	for i, v := range views {
		out[i] = SlotResponse{
			ID:        v.ID,
			StableID:  v.StableID,
			HorseID:   v.HorseID,
			HorseName: v.HorseName,
			Date:      v.Date.String(),
			StartTime: v.Start,
			EndTime:   v.End,
			Status:    string(v.Status),
		}
		if v.Booking != nil {
			out[i].Booking = &SlotBooking{
				ID:        v.Booking.ID,
				Status:    v.Booking.Status.String(),
				RiderName: v.Booking.RiderName,
			}
		}
	}
	return out
}
