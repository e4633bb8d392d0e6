//go:build unit || e2e

package builder

import (
	"time"

	reqdto "stable-booking/internal/handler/dto/request"
	"stable-booking/internal/usecase/commands"
	"stable-booking/internal/usecase/queries"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	RiderID         uuid.UUID
	RiderName       string
	HorseID         uuid.UUID
	HorseName       string
	StableID        uuid.UUID
	StableName      string
	StableOwnerID   uuid.UUID
	StartTime       time.Time
	PriceCents      int
	CommissionCents int
	Status          string
	CancelledBy     *string
	HorseTier       *string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	tier := "Intermediate"
	start := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		ID:              uuid.New(),
		RiderID:         uuid.New(),
		RiderName:       "Test Rider",
		HorseID:         uuid.New(),
		HorseName:       "Biscuit",
		StableID:        uuid.New(),
		StableName:      "Willow Creek",
		StableOwnerID:   uuid.New(),
		StartTime:       start,
		PriceCents:      6000,
		CommissionCents: 600,
		Status:          "confirmed",
		HorseTier:       &tier,
		CreatedAt:       time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              b.ID,
		RiderID:         b.RiderID,
		HorseID:         b.HorseID,
		StableID:        b.StableID,
		StableOwnerID:   b.StableOwnerID,
		Status:          b.Status,
		StartTime:       b.StartTime,
		EndTime:         b.StartTime.Add(time.Hour),
		PriceCents:      b.PriceCents,
		CommissionCents: b.CommissionCents,
		HorseTier:       b.HorseTier,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		RiderID:         b.RiderID,
		RiderName:       b.RiderName,
		RiderEmail:      "rider@example.com",
		HorseID:         b.HorseID,
		HorseName:       b.HorseName,
		StableID:        b.StableID,
		StableName:      b.StableName,
		StableOwnerID:   b.StableOwnerID,
		StartTime:       b.StartTime,
		EndTime:         b.StartTime.Add(time.Hour),
		PriceCents:      b.PriceCents,
		CommissionCents: b.CommissionCents,
		Status:          b.Status,
		CancelledBy:     b.CancelledBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         b.ID,
		HorseID:    b.HorseID,
		HorseName:  b.HorseName,
		StableID:   b.StableID,
		StableName: b.StableName,
		StartTime:  b.StartTime,
		EndTime:    b.StartTime.Add(time.Hour),
		PriceCents: b.PriceCents,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HorseID:   b.HorseID,
		StartTime: b.StartTime,
	}
}

func (b *BookingBuilder) BuildCreateResult() *commands.CreateBookingResult {
	return &commands.CreateBookingResult{
		BookingID:       b.ID,
		HorseID:         b.HorseID,
		StableID:        b.StableID,
		StartTime:       b.StartTime,
		EndTime:         b.StartTime.Add(time.Hour),
		PriceCents:      b.PriceCents,
		CommissionCents: b.CommissionCents,
		Status:          b.Status,
	}
}
