package slot

import (
	"time"
)

// Interval is a live booking held by a horse.
type Interval struct {
	Start time.Time
	End   time.Time
}

type SessionCounts map[Session]int

// WelfareEngine applies the per-horse session caps and the optional lead-time
// rule. Sessions are evaluated on the stable-local clock.
type WelfareEngine struct {
	policy Policy
	loc    *time.Location
}

func NewWelfareEngine(policy Policy, loc *time.Location) WelfareEngine {
	return WelfareEngine{policy: policy, loc: loc}
}

func (w WelfareEngine) Policy() Policy {
	return w.policy
}

func (w WelfareEngine) Location() *time.Location {
	return w.loc
}

func (w WelfareEngine) SessionOf(t time.Time) Session {
	return SessionOf(t.In(w.loc).Hour())
}

// Count tallies live booking starts per session.
func (w WelfareEngine) Count(starts []time.Time) SessionCounts {
	counts := make(SessionCounts, 2)
	for _, s := range starts {
		counts[w.SessionOf(s)]++
	}
	return counts
}

// Evaluate returns the status of one slot given whether it holds a live
// booking and the horse's live bookings per session on that date.
func (w WelfareEngine) Evaluate(start time.Time, booked bool, counts SessionCounts, now time.Time) Status {
	if booked {
		return StatusBooked
	}
	session := w.SessionOf(start)
	if counts[session] >= w.policy.CapFor(session) {
		return StatusBlockedSession
	}
	if w.blockedByLeadTime(start, now) {
		return StatusBlockedLeadTime
	}
	return StatusAvailable
}

// CheckBookable validates a new one-hour booking starting at start against
// the horse's live bookings on the same local date.
func (w WelfareEngine) CheckBookable(start time.Time, live []Interval, now time.Time) error {
	local := start.In(w.loc)
	if local.Minute() != 0 || local.Second() != 0 || local.Nanosecond() != 0 || !w.policy.Offers(local.Hour()) {
		return ErrNotPolicyHour
	}
	if !start.After(now) {
		return ErrStartInPast
	}

	end := start.Add(SlotLength)
	starts := make([]time.Time, 0, len(live))
	for _, iv := range live {
		if iv.Start.Before(end) && start.Before(iv.End) {
			return ErrOverlap
		}
		starts = append(starts, iv.Start)
	}

	session := w.SessionOf(start)
	if w.Count(starts)[session] >= w.policy.CapFor(session) {
		return ErrSessionFull
	}
	if w.blockedByLeadTime(start, now) {
		return ErrLeadTimeNotMet
	}
	return nil
}

func (w WelfareEngine) blockedByLeadTime(start, now time.Time) bool {
	lt := w.policy.LeadTime
	if !lt.Enabled {
		return false
	}
	return start.Before(now.Add(lt.Minimum))
}
