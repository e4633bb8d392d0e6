//go:build unit

package slot_test

import (
	"testing"
	"time"

	"stable-booking/internal/domain/slot"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 0, 0, 0, jst)
}

func TestWelfareEngine_Evaluate(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, jst)
	engine := slot.NewWelfareEngine(slot.DefaultPolicy(), jst)

	tests := []struct {
		name   string
		start  time.Time
		booked bool
		live   []time.Time
		want   slot.Status
	}{
		{name: "free slot", start: at(6), want: slot.StatusAvailable},
		{name: "booked slot", start: at(6), booked: true, want: slot.StatusBooked},
		{name: "booked wins over a full session", start: at(7), booked: true, live: []time.Time{at(6), at(7)}, want: slot.StatusBooked},
		{name: "one morning booking leaves room", start: at(8), live: []time.Time{at(6)}, want: slot.StatusAvailable},
		{name: "two morning bookings block the morning", start: at(8), live: []time.Time{at(6), at(7)}, want: slot.StatusBlockedSession},
		{name: "full morning does not block the afternoon", start: at(14), live: []time.Time{at(6), at(7)}, want: slot.StatusAvailable},
		{name: "one afternoon booking blocks the afternoon", start: at(16), live: []time.Time{at(14)}, want: slot.StatusBlockedSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(tt.start, tt.booked, engine.Count(tt.live), now)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("lead time blocks near slots only when enabled", func(t *testing.T) {
		now := at(5)
		lead := slot.DefaultPolicy().WithLeadTime(slot.LeadTime{Enabled: true, Minimum: 2 * time.Hour})
		withLead := slot.NewWelfareEngine(lead, jst)

		assert.Equal(t, slot.StatusBlockedLeadTime, withLead.Evaluate(at(6), false, nil, now))
		assert.Equal(t, slot.StatusAvailable, withLead.Evaluate(at(7), false, nil, now))
		assert.Equal(t, slot.StatusAvailable, engine.Evaluate(at(6), false, nil, now))
	})

	t.Run("session is taken from the stable clock", func(t *testing.T) {
		// 11:00 JST is 02:00 UTC; still morning for the stable.
		utcStart := at(11).UTC()
		assert.Equal(t, slot.SessionMorning, engine.SessionOf(utcStart))
		assert.Equal(t, slot.StatusBlockedSession, engine.Evaluate(utcStart, false, engine.Count([]time.Time{at(6), at(7)}), now))
	})
}

func TestWelfareEngine_CheckBookable(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, jst)
	engine := slot.NewWelfareEngine(slot.DefaultPolicy(), jst)
	hour := func(h int) slot.Interval { return slot.Interval{Start: at(h), End: at(h).Add(time.Hour)} }

	tests := []struct {
		name  string
		start time.Time
		live  []slot.Interval
		now   time.Time
		errIs error
	}{
		{name: "first morning booking", start: at(6)},
		{name: "second morning booking", start: at(8), live: []slot.Interval{hour(6)}},
		{name: "third morning booking is rejected", start: at(9), live: []slot.Interval{hour(6), hour(7)}, errIs: slot.ErrSessionFull},
		{name: "first afternoon booking", start: at(14), live: []slot.Interval{hour(6), hour(7)}},
		{name: "second afternoon booking is rejected", start: at(16), live: []slot.Interval{hour(14)}, errIs: slot.ErrSessionFull},
		{name: "same hour overlaps", start: at(6), live: []slot.Interval{hour(6)}, errIs: slot.ErrOverlap},
		{name: "longer manual slot overlaps", start: at(7), live: []slot.Interval{{Start: at(6), End: at(6).Add(90 * time.Minute)}}, errIs: slot.ErrOverlap},
		{name: "adjacent booking does not overlap", start: at(7), live: []slot.Interval{hour(6)}},
		{name: "lunch hour is not offered", start: at(12), errIs: slot.ErrNotPolicyHour},
		{name: "start off the hour", start: at(6).Add(30 * time.Minute), errIs: slot.ErrNotPolicyHour},
		{name: "start in the past", start: at(6), now: at(7), errIs: slot.ErrStartInPast},
		{name: "start exactly now", start: at(6), now: at(6), errIs: slot.ErrStartInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := now
			if !tt.now.IsZero() {
				n = tt.now
			}
			err := engine.CheckBookable(tt.start, tt.live, n)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("lead time when enabled", func(t *testing.T) {
		lead := slot.DefaultPolicy().WithLeadTime(slot.LeadTime{Enabled: true, Minimum: 2 * time.Hour})
		withLead := slot.NewWelfareEngine(lead, jst)

		assert.ErrorIs(t, withLead.CheckBookable(at(6), nil, at(5)), slot.ErrLeadTimeNotMet)
		assert.NoError(t, withLead.CheckBookable(at(7), nil, at(5)))
	})
}
