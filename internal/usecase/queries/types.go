package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// BookingView is a booking with the names a participant needs to read it.
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	RiderID         uuid.UUID `json:"rider_id"`
	RiderName       string    `json:"rider_name"`
	RiderEmail      string    `json:"rider_email"`
	HorseID         uuid.UUID `json:"horse_id"`
	HorseName       string    `json:"horse_name"`
	StableID        uuid.UUID `json:"stable_id"`
	StableName      string    `json:"stable_name"`
	StableOwnerID   uuid.UUID `json:"stable_owner_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	PriceCents      int       `json:"price_cents"`
	CommissionCents int       `json:"commission_cents"`
	Status          string    `json:"status"`
	CancelledBy     *string   `json:"cancelled_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	HorseID    uuid.UUID `json:"horse_id"`
	HorseName  string    `json:"horse_name"`
	StableID   uuid.UUID `json:"stable_id"`
	StableName string    `json:"stable_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	PriceCents int       `json:"price_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type LeaderboardEntry struct {
	RiderID     uuid.UUID `json:"rider_id"`
	Name        string    `json:"name"`
	RankPoints  int       `json:"rank_points"`
	Tier        string    `json:"tier"`
	RidesScored int       `json:"rides_scored"`
}

// ListingFilter narrows the stables considered by a listing.
type ListingFilter struct {
	Search   *string
	Location *string
	OwnerID  *uuid.UUID
}

// ReviewSignal is one review as needed for rating aggregation.
type ReviewSignal struct {
	StableID uuid.UUID
	HorseID  *uuid.UUID
	Rating   int
	Comment  string
}
