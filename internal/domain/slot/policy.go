package slot

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"stable-booking/internal/pkg/patch"
)

type LeadTime struct {
	Enabled bool
	Minimum time.Duration
}

// Policy describes which hours a stable offers and how many rides a horse may
// take per session.
type Policy struct {
	MorningHours                 []int
	AfternoonHours               []int
	MaxMorningBookingsPerHorse   int
	MaxAfternoonBookingsPerHorse int
	LeadTime                     LeadTime
}

func DefaultPolicy() Policy {
	return Policy{
		MorningHours:                 []int{6, 7, 8, 9, 10, 11},
		AfternoonHours:               []int{14, 15, 16},
		MaxMorningBookingsPerHorse:   2,
		MaxAfternoonBookingsPerHorse: 1,
	}
}

type policyOverride struct {
	MorningHours                 []int `json:"morningHours"`
	AfternoonHours               []int `json:"afternoonHours"`
	MaxMorningBookingsPerHorse   *int  `json:"maxMorningBookingsPerHorse"`
	MaxAfternoonBookingsPerHorse *int  `json:"maxAfternoonBookingsPerHorse"`
}

// ParsePolicy applies a stable's JSON override on top of base.
// Missing keys keep the base values.
func ParsePolicy(raw []byte, base Policy) (Policy, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return base, nil
	}

	var o policyOverride
	if err := json.Unmarshal(raw, &o); err != nil {
		return Policy{}, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	p := base
	p.MorningHours = patch.Slice(o.MorningHours, base.MorningHours)
	p.AfternoonHours = patch.Slice(o.AfternoonHours, base.AfternoonHours)
	p.MaxMorningBookingsPerHorse = patch.Coalesce(o.MaxMorningBookingsPerHorse, base.MaxMorningBookingsPerHorse)
	p.MaxAfternoonBookingsPerHorse = patch.Coalesce(o.MaxAfternoonBookingsPerHorse, base.MaxAfternoonBookingsPerHorse)

	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (p Policy) Validate() error {
	seen := make(map[int]struct{}, len(p.MorningHours)+len(p.AfternoonHours))
	check := func(h int, want Session) error {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: hour %d out of range", ErrInvalidPolicy, h)
		}
		if SessionOf(h) != want {
			return fmt.Errorf("%w: hour %d is not a %s hour", ErrInvalidPolicy, h, want)
		}
		if _, dup := seen[h]; dup {
			return fmt.Errorf("%w: hour %d listed twice", ErrInvalidPolicy, h)
		}
		seen[h] = struct{}{}
		return nil
	}

	for _, h := range p.MorningHours {
		if err := check(h, SessionMorning); err != nil {
			return err
		}
	}
	for _, h := range p.AfternoonHours {
		if err := check(h, SessionAfternoon); err != nil {
			return err
		}
	}
	if p.MaxMorningBookingsPerHorse < 0 || p.MaxAfternoonBookingsPerHorse < 0 {
		return fmt.Errorf("%w: session caps must not be negative", ErrInvalidPolicy)
	}
	if p.LeadTime.Minimum < 0 {
		return fmt.Errorf("%w: lead time must not be negative", ErrInvalidPolicy)
	}
	return nil
}

// Hours returns every offered hour in ascending order.
func (p Policy) Hours() []int {
	hours := make([]int, 0, len(p.MorningHours)+len(p.AfternoonHours))
	hours = append(hours, p.MorningHours...)
	hours = append(hours, p.AfternoonHours...)
	slices.Sort(hours)
	return hours
}

func (p Policy) Offers(hour int) bool {
	return slices.Contains(p.MorningHours, hour) || slices.Contains(p.AfternoonHours, hour)
}

func (p Policy) CapFor(s Session) int {
	if s == SessionMorning {
		return p.MaxMorningBookingsPerHorse
	}
	return p.MaxAfternoonBookingsPerHorse
}

// WithLeadTime returns a copy carrying the given lead-time rule.
func (p Policy) WithLeadTime(lt LeadTime) Policy {
	p.LeadTime = lt
	return p
}
