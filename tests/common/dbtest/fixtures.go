//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, name, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, name, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func SetRankPoints(t *testing.T, db DBLike, userID uuid.UUID, points int) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET rank_points = $2 WHERE id = $1", userID, points)
	require.NoError(t, err)
}

type StableFixture struct {
	OwnerID    uuid.UUID
	Name       string
	Location   string
	Latitude   *float64
	Longitude  *float64
	SlotPolicy string
}

func CreateTestStable(t *testing.T, db DBLike, f StableFixture) uuid.UUID {
	t.Helper()

	var policy any
	if f.SlotPolicy != "" {
		policy = f.SlotPolicy
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO stables (owner_id, name, location, latitude, longitude, slot_policy)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb) RETURNING id`,
		f.OwnerID, f.Name, f.Location, f.Latitude, f.Longitude, policy).Scan(&id)
	require.NoError(t, err)
	return id
}

type HorseFixture struct {
	StableID          uuid.UUID
	Name              string
	PricePerHourCents int
	Tier              *string
	Inactive          bool
}

func CreateTestHorse(t *testing.T, db DBLike, f HorseFixture) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO horses (stable_id, name, price_per_hour_cents, admin_tier, is_active)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		f.StableID, f.Name, f.PricePerHourCents, f.Tier, !f.Inactive).Scan(&id)
	require.NoError(t, err)
	return id
}

type BookingFixture struct {
	RiderID    uuid.UUID
	HorseID    uuid.UUID
	StableID   uuid.UUID
	Start      time.Time
	PriceCents int
	Status     string
}

// CreateTestBooking inserts a one-hour booking directly, bypassing the
// booking rules. Status defaults to confirmed.
func CreateTestBooking(t *testing.T, db DBLike, f BookingFixture) uuid.UUID {
	t.Helper()

	status := f.Status
	if status == "" {
		status = "confirmed"
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO bookings (rider_id, horse_id, stable_id, start_time, end_time, price_cents, commission_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		f.RiderID, f.HorseID, f.StableID, f.Start, f.Start.Add(time.Hour), f.PriceCents, f.PriceCents/10, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestReview(t *testing.T, db DBLike, bookingID, riderID, stableID uuid.UUID, horseID *uuid.UUID, rating int, comment string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO reviews (booking_id, rider_id, stable_id, horse_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		bookingID, riderID, stableID, horseID, rating, comment).Scan(&id)
	require.NoError(t, err)
	return id
}
