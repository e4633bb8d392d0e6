package slot

import (
	"time"

	"github.com/google/uuid"
)

const (
	SlotLength         = time.Hour
	DefaultWindowDays  = 7
	DuplicateTolerance = 60 * time.Second
)

type Candidate struct {
	StableID uuid.UUID
	HorseID  uuid.UUID
	Date     Date
	Start    time.Time
	End      time.Time
}

type ExistingSlot struct {
	HorseID uuid.UUID
	Start   time.Time
}

type Generator struct {
	policy Policy
	loc    *time.Location
	days   int
}

func NewGenerator(policy Policy, loc *time.Location, days int) Generator {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return Generator{policy: policy, loc: loc, days: days}
}

// Window returns the [start, end) instants covered by a generation run.
func (g Generator) Window(base Date) (time.Time, time.Time) {
	return base.At(0, g.loc), base.AddDays(g.days).At(0, g.loc)
}

// Generate lists the slots missing from existing for every day of the window,
// every horse and every offered hour. It does not persist anything.
func (g Generator) Generate(stableID uuid.UUID, base Date, horses []uuid.UUID, existing []ExistingSlot) []Candidate {
	byHorse := make(map[uuid.UUID][]time.Time, len(horses))
	for _, e := range existing {
		byHorse[e.HorseID] = append(byHorse[e.HorseID], e.Start)
	}

	hours := g.policy.Hours()
	out := make([]Candidate, 0, g.days*len(horses)*len(hours))
	for day := 0; day < g.days; day++ {
		date := base.AddDays(day)
		for _, horseID := range horses {
			for _, h := range hours {
				start := date.At(h, g.loc)
				if hasNearby(byHorse[horseID], start) {
					continue
				}
				out = append(out, Candidate{
					StableID: stableID,
					HorseID:  horseID,
					Date:     date,
					Start:    start,
					End:      start.Add(SlotLength),
				})
			}
		}
	}
	return out
}

func hasNearby(starts []time.Time, t time.Time) bool {
	for _, s := range starts {
		d := s.Sub(t)
		if d < 0 {
			d = -d
		}
		if d <= DuplicateTolerance {
			return true
		}
	}
	return false
}
