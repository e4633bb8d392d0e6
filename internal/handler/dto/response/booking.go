package response

import (
	"time"

	"stable-booking/internal/usecase/commands"
	"stable-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	RiderID         uuid.UUID `json:"riderId"`
	RiderName       string    `json:"riderName"`
	HorseID         uuid.UUID `json:"horseId"`
	HorseName       string    `json:"horseName"`
	StableID        uuid.UUID `json:"stableId"`
	StableName      string    `json:"stableName"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	PriceCents      int       `json:"priceCents"`
	CommissionCents int       `json:"commissionCents"`
	Status          string    `json:"status"`
	CancelledBy     *string   `json:"cancelledBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	HorseID    uuid.UUID `json:"horseId"`
	HorseName  string    `json:"horseName"`
	StableID   uuid.UUID `json:"stableId"`
	StableName string    `json:"stableName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	PriceCents int       `json:"priceCents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor *string                   `json:"nextCursor,omitempty"`
}

type CreateBookingResponse struct {
	ID              uuid.UUID `json:"id"`
	HorseID         uuid.UUID `json:"horseId"`
	StableID        uuid.UUID `json:"stableId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	PriceCents      int       `json:"priceCents"`
	CommissionCents int       `json:"commissionCents"`
	Status          string    `json:"status"`
}

type CreateReviewResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var out BookingResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	out := BookingListResponse{Items: make([]BookingListItemResponse, 0, len(items))}
	if err := copier.Copy(&out.Items, items); err != nil {
		return nil, err
	}
	if next != nil {
		out.NextCursor = &next.After
	}
	return &out, nil
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:              r.BookingID,
		HorseID:         r.HorseID,
		StableID:        r.StableID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		PriceCents:      r.PriceCents,
		CommissionCents: r.CommissionCents,
		Status:          r.Status,
	}
}
