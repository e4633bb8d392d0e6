package slot

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"stable-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingRef is the booking joined onto a persisted slot row.
type BookingRef struct {
	ID          uuid.UUID
	Status      booking.Status
	CancelledBy string
	RiderName   string
}

// Record is a persisted slot row. HorseID is nil for legacy placeholder rows.
type Record struct {
	ID        uuid.UUID
	StableID  uuid.UUID
	HorseID   *uuid.UUID
	HorseName string
	Date      Date
	Start     time.Time
	End       time.Time
	Booking   *BookingRef
}

type View struct {
	ID        uuid.UUID
	StableID  uuid.UUID
	HorseID   uuid.UUID
	HorseName string
	Date      Date
	Start     time.Time
	End       time.Time
	Status    Status
	Booking   *BookingRef
}

// LockKey names the advisory lock serialising work on one stable's date.
func LockKey(stableID uuid.UUID, date Date) string {
	return fmt.Sprintf("slots:%s:%s", stableID, date)
}

type dedupKey struct {
	horseID uuid.UUID
	start   int64
}

// Reconcile annotates persisted rows with their status, drops placeholder
// rows, keeps one row per (horse, start) preferring a non-available one, and
// orders the result by start time then horse.
// live holds each horse's live booking starts on the requested date.
func Reconcile(engine WelfareEngine, records []Record, live map[uuid.UUID][]time.Time, now time.Time) []View {
	counts := make(map[uuid.UUID]SessionCounts, len(live))
	for horseID, starts := range live {
		counts[horseID] = engine.Count(starts)
	}

	index := make(map[dedupKey]int, len(records))
	out := make([]View, 0, len(records))
	for _, rec := range records {
		if rec.HorseID == nil {
			continue
		}
		horseID := *rec.HorseID

		ref := rec.Booking
		if ref != nil && !ref.Status.IsLive() {
			ref = nil
		}
		booked := ref != nil || containsInstant(live[horseID], rec.Start)

		v := View{
			ID:        rec.ID,
			StableID:  rec.StableID,
			HorseID:   horseID,
			HorseName: rec.HorseName,
			Date:      rec.Date,
			Start:     rec.Start,
			End:       rec.End,
			Status:    engine.Evaluate(rec.Start, booked, counts[horseID], now),
			Booking:   ref,
		}

		key := dedupKey{horseID: horseID, start: rec.Start.UnixNano()}
		if i, ok := index[key]; ok {
			if out[i].Status.IsAvailable() && !v.Status.IsAvailable() {
				out[i] = v
			}
			continue
		}
		index[key] = len(out)
		out = append(out, v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return bytes.Compare(out[i].HorseID[:], out[j].HorseID[:]) < 0
	})
	return out
}

func containsInstant(ts []time.Time, t time.Time) bool {
	for _, x := range ts {
		if x.Equal(t) {
			return true
		}
	}
	return false
}
