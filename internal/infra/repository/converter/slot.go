package converter

import (
	"stable-booking/internal/domain/booking"
	"stable-booking/internal/domain/slot"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"
)

func CandidateToInsertParams(c slot.Candidate) sqlc.InsertSlotParams {
	return sqlc.InsertSlotParams{
		StableID:  c.StableID,
		HorseID:   pgconv.UUIDToPgtype(c.HorseID),
		SlotDate:  pgconv.DateToPgtype(c.Date.Midnight()),
		StartTime: pgconv.TimeToPgtype(c.Start),
		EndTime:   pgconv.TimeToPgtype(c.End),
	}
}

func SlotRecordFromRow(row sqlc.ListSlotsWithBookingsRow) slot.Record {
	rec := slot.Record{
		ID:        row.ID,
		StableID:  row.StableID,
		HorseID:   pgconv.UUIDPtrFromPgtype(row.HorseID),
		HorseName: row.HorseName,
		Date:      slot.DateOf(pgconv.DateFromPgtype(row.SlotDate)),
		Start:     pgconv.TimeFromPgtype(row.StartTime),
		End:       pgconv.TimeFromPgtype(row.EndTime),
	}
	if row.BookingID.Valid {
		rec.Booking = &slot.BookingRef{
			ID:          row.BookingID.Bytes,
			Status:      booking.Status(row.BookingStatus.String),
			CancelledBy: row.BookingCancelledBy.String,
			RiderName:   row.RiderName.String,
		}
	}
	return rec
}
