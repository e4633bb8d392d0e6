package repository

import (
	"context"
	"time"

	"stable-booking/internal/domain/booking"
	"stable-booking/internal/domain/slot"
	"stable-booking/internal/infra"
	"stable-booking/internal/infra/repository/converter"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	LockSlotWindow(ctx context.Context, db sqlc.DBTX, lockKey string) error
	DeleteUnbookedSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteUnbookedSlotsParams) (int64, error)
	ListSlotStartsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotStartsInWindowParams) ([]sqlc.ListSlotStartsInWindowRow, error)
	InsertSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotParams) (int64, error)
	ListSlotsWithBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotsWithBookingsParams) ([]sqlc.ListSlotsWithBookingsRow, error)
	ListLiveBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLiveBookingsParams) ([]sqlc.ListLiveBookingsRow, error)
	AttachBookingToSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachBookingToSlotParams) (uuid.UUID, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
}

func NewSlotRepository(queries SlotWriteQueries) *SlotRepository {
	return &SlotRepository{queries: queries}
}

func (r *SlotRepository) Lock(ctx context.Context, tx sqlc.DBTX, key string) error {
	if err := r.queries.LockSlotWindow(ctx, tx, key); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}
	return nil
}

func (r *SlotRepository) DeleteUnbooked(ctx context.Context, tx sqlc.DBTX, stableID uuid.UUID, date slot.Date) (int64, error) {
	n, err := r.queries.DeleteUnbookedSlots(ctx, tx, sqlc.DeleteUnbookedSlotsParams{
		StableID: stableID,
		SlotDate: pgconv.DateToPgtype(date.Midnight()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge unbooked slots", err)
	}
	return n, nil
}

func (r *SlotRepository) StartsInWindow(ctx context.Context, tx sqlc.DBTX, stableID uuid.UUID, from, to time.Time) ([]slot.ExistingSlot, error) {
	rows, err := r.queries.ListSlotStartsInWindow(ctx, tx, sqlc.ListSlotStartsInWindowParams{
		StableID:    stableID,
		WindowStart: pgconv.TimeToPgtype(from),
		WindowEnd:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot starts", err)
	}

	out := make([]slot.ExistingSlot, 0, len(rows))
	for _, row := range rows {
		if !row.HorseID.Valid {
			continue
		}
		out = append(out, slot.ExistingSlot{
			HorseID: row.HorseID.Bytes,
			Start:   pgconv.TimeFromPgtype(row.StartTime),
		})
	}
	return out, nil
}

// InsertCandidates returns how many rows were actually inserted; rows that
// collide on (horse, start) are skipped.
func (r *SlotRepository) InsertCandidates(ctx context.Context, tx sqlc.DBTX, candidates []slot.Candidate) (int, error) {
	created := 0
	for _, c := range candidates {
		n, err := r.queries.InsertSlot(ctx, tx, converter.CandidateToInsertParams(c))
		if err != nil {
			return created, infra.WrapRepoErr("failed to insert slot", err)
		}
		created += int(n)
	}
	return created, nil
}

func (r *SlotRepository) ListWithBookings(ctx context.Context, tx sqlc.DBTX, stableID uuid.UUID, date slot.Date, horseID *uuid.UUID) ([]slot.Record, error) {
	rows, err := r.queries.ListSlotsWithBookings(ctx, tx, sqlc.ListSlotsWithBookingsParams{
		StableID: stableID,
		SlotDate: pgconv.DateToPgtype(date.Midnight()),
		HorseID:  pgconv.UUIDPtrToPgtype(horseID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}

	out := make([]slot.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.SlotRecordFromRow(row))
	}
	return out, nil
}

func (r *SlotRepository) LiveBookings(ctx context.Context, tx sqlc.DBTX, stableID uuid.UUID, from, to time.Time, horseID *uuid.UUID) (map[uuid.UUID][]slot.Interval, error) {
	rows, err := r.queries.ListLiveBookings(ctx, tx, sqlc.ListLiveBookingsParams{
		StableID:    stableID,
		WindowStart: pgconv.TimeToPgtype(from),
		WindowEnd:   pgconv.TimeToPgtype(to),
		HorseID:     pgconv.UUIDPtrToPgtype(horseID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live bookings", err)
	}

	out := make(map[uuid.UUID][]slot.Interval)
	for _, row := range rows {
		out[row.HorseID] = append(out[row.HorseID], slot.Interval{
			Start: pgconv.TimeFromPgtype(row.StartTime),
			End:   pgconv.TimeFromPgtype(row.EndTime),
		})
	}
	return out, nil
}

// AttachBooking links b to the slot row at its start, creating the row when
// the calendar had none.
func (r *SlotRepository) AttachBooking(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, date slot.Date) error {
	_, err := r.queries.AttachBookingToSlot(ctx, tx, sqlc.AttachBookingToSlotParams{
		StableID:  b.StableID(),
		HorseID:   pgconv.UUIDToPgtype(b.HorseID()),
		SlotDate:  pgconv.DateToPgtype(date.Midnight()),
		StartTime: pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:   pgconv.TimeToPgtype(b.TimeSlot().End()),
		BookingID: pgconv.UUIDToPgtype(b.ID()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach booking to slot", err)
	}
	return nil
}
