package slot

import "errors"

var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidPolicy    = errors.New("invalid slot policy")
	ErrNotPolicyHour    = errors.New("start time is not an offered slot hour")
	ErrStartInPast      = errors.New("slot start is in the past")
	ErrOverlap          = errors.New("horse already booked for an overlapping time")
	ErrSessionFull      = errors.New("horse session capacity reached")
	ErrLeadTimeNotMet   = errors.New("lead time requirement not met")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

type Status string

const (
	StatusAvailable       Status = "available"
	StatusBooked          Status = "booked"
	StatusBlockedSession  Status = "blocked_session"
	StatusBlockedLeadTime Status = "blocked_lead_time"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsAvailable() bool {
	return s == StatusAvailable
}

type Session string

const (
	SessionMorning   Session = "morning"
	SessionAfternoon Session = "afternoon"
)

// SessionOf partitions a local clock hour into a session.
func SessionOf(hour int) Session {
	if hour < 12 {
		return SessionMorning
	}
	return SessionAfternoon
}
