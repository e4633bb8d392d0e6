package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type StableSnapshot struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Location   string
	SlotPolicy []byte
}

type HorseSnapshot struct {
	ID                uuid.UUID
	StableID          uuid.UUID
	Name              string
	PricePerHourCents int
	IsActive          bool
	AdminTier         *string
}

type BookingSnapshot struct {
	ID              uuid.UUID
	RiderID         uuid.UUID
	HorseID         uuid.UUID
	StableID        uuid.UUID
	StableOwnerID   uuid.UUID
	Status          string
	StartTime       time.Time
	EndTime         time.Time
	PriceCents      int
	CommissionCents int
	HorseTier       *string
	CreatedAt       time.Time
}
