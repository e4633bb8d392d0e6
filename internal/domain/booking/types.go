package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsLive reports whether the booking still holds its horse and hour.
func (s Status) IsLive() bool {
	return s != StatusCancelled
}

type CancelledBy string

const (
	CancelledByRider  CancelledBy = "rider"
	CancelledByStable CancelledBy = "stable"
)

func (c CancelledBy) String() string {
	return string(c)
}
