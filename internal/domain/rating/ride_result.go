package rating

import (
	"time"

	"github.com/google/uuid"
)

// RideResult records the single scoring of a booking.
type RideResult struct {
	id           uuid.UUID
	bookingID    uuid.UUID
	riderID      uuid.UUID
	horseID      uuid.UUID
	stableID     uuid.UUID
	score        PerformanceScore
	pointsChange int
	createdAt    time.Time
}

func NewRideResult(bookingID, riderID, horseID, stableID uuid.UUID, score PerformanceScore, outcome Outcome, now time.Time) *RideResult {
	return &RideResult{
		id:           uuid.New(),
		bookingID:    bookingID,
		riderID:      riderID,
		horseID:      horseID,
		stableID:     stableID,
		score:        score,
		pointsChange: outcome.Delta,
		createdAt:    now,
	}
}

func (r *RideResult) ID() uuid.UUID           { return r.id }
func (r *RideResult) BookingID() uuid.UUID    { return r.bookingID }
func (r *RideResult) RiderID() uuid.UUID      { return r.riderID }
func (r *RideResult) HorseID() uuid.UUID      { return r.horseID }
func (r *RideResult) StableID() uuid.UUID     { return r.stableID }
func (r *RideResult) Score() PerformanceScore { return r.score }
func (r *RideResult) PointsChange() int       { return r.pointsChange }
func (r *RideResult) CreatedAt() time.Time    { return r.createdAt }
