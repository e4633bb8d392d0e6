package converter

import (
	"stable-booking/internal/domain/booking"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		RiderID:         b.RiderID(),
		HorseID:         b.HorseID(),
		StableID:        b.StableID(),
		StartTime:       pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:         pgconv.TimeToPgtype(b.TimeSlot().End()),
		PriceCents:      pgconv.IntToInt32(b.Price().Cents()),
		CommissionCents: pgconv.IntToInt32(b.Commission().Cents()),
		Status:          b.Status().String(),
	}
}

func BookingToStatusParams(b *booking.Booking) sqlc.UpdateBookingStatusParams {
	cancelledBy := pgtype.Text{}
	if by := b.CancelledBy(); by != nil {
		cancelledBy = pgconv.StringToPgtype(by.String())
	}
	return sqlc.UpdateBookingStatusParams{
		ID:          b.ID(),
		Status:      b.Status().String(),
		CancelledBy: cancelledBy,
	}
}
