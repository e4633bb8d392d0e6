package shared

import (
	"context"
	"time"

	"stable-booking/internal/domain/booking"
	"stable-booking/internal/domain/rating"
	"stable-booking/internal/domain/review"
	"stable-booking/internal/domain/slot"
	"stable-booking/internal/domain/user"
	sqlc "stable-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	RideResults() RideResultRepository
	Riders() RiderRepository
	Reviews() ReviewRepository
	Horses() HorseRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	StableByID(ctx context.Context, id uuid.UUID) (*StableSnapshot, error)
	HorseByID(ctx context.Context, id uuid.UUID) (*HorseSnapshot, error)
	ActiveHorseIDs(ctx context.Context, stableID uuid.UUID) ([]uuid.UUID, error)
	// BookingForUpdate locks the booking row until the transaction ends.
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	RideResultExists(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type SlotRepository interface {
	// Lock takes a transaction-scoped advisory lock on key.
	Lock(ctx context.Context, tx sqlc.DBTX, key string) error
	DeleteUnbooked(ctx context.Context, tx sqlc.DBTX, stableID uuid.UUID, date slot.Date) (int64, error)
	StartsInWindow(ctx context.Context, tx sqlc.DBTX, stableID uuid.UUID, from, to time.Time) ([]slot.ExistingSlot, error)
	InsertCandidates(ctx context.Context, tx sqlc.DBTX, candidates []slot.Candidate) (int, error)
	ListWithBookings(ctx context.Context, tx sqlc.DBTX, stableID uuid.UUID, date slot.Date, horseID *uuid.UUID) ([]slot.Record, error)
	LiveBookings(ctx context.Context, tx sqlc.DBTX, stableID uuid.UUID, from, to time.Time, horseID *uuid.UUID) (map[uuid.UUID][]slot.Interval, error)
	AttachBooking(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, date slot.Date) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type RideResultRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, result *rating.RideResult) (uuid.UUID, error)
}

type RiderRepository interface {
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, riderID uuid.UUID) (*user.User, error)
	EnsureTier(ctx context.Context, tx sqlc.DBTX, band rating.Band) (uuid.UUID, error)
	UpdateRating(ctx context.Context, tx sqlc.DBTX, rider *user.User, tierID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
}

type HorseRepository interface {
	UpdateTier(ctx context.Context, tx sqlc.DBTX, horseID uuid.UUID, tier *rating.Tier) error
}
