package rating

import (
	"errors"
	"math"
)

var (
	ErrScoreOutOfRange  = errors.New("performance score must be between 1 and 10")
	ErrInvalidTier      = errors.New("unknown tier")
	ErrHorseTierMissing = errors.New("horse has no admin-assigned tier")
)

type Tier string

const (
	TierBeginner     Tier = "Beginner"
	TierIntermediate Tier = "Intermediate"
	TierAdvanced     Tier = "Advanced"
)

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}
	return t, nil
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	switch t {
	case TierBeginner, TierIntermediate, TierAdvanced:
		return true
	default:
		return false
	}
}

// Rating is the opponent strength used for a horse of this tier.
func (t Tier) Rating() float64 {
	switch t {
	case TierIntermediate:
		return 1500
	case TierAdvanced:
		return 1850
	default:
		return 1150
	}
}

// Multiplier scales the K factor so harder horses move points faster.
func (t Tier) Multiplier() float64 {
	switch t {
	case TierIntermediate:
		return 1.0
	case TierAdvanced:
		return 1.25
	default:
		return 0.75
	}
}

// Band is an inclusive rank-point range for a rider tier.
type Band struct {
	Tier Tier
	Min  int
	Max  int
}

var bands = []Band{
	{Tier: TierBeginner, Min: 0, Max: 1300},
	{Tier: TierIntermediate, Min: 1301, Max: 1700},
	{Tier: TierAdvanced, Min: 1701, Max: math.MaxInt32},
}

func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

func BandFor(t Tier) Band {
	for _, b := range bands {
		if b.Tier == t {
			return b
		}
	}
	return bands[0]
}

func TierForPoints(points int) Tier {
	for i := len(bands) - 1; i >= 0; i-- {
		if points >= bands[i].Min {
			return bands[i].Tier
		}
	}
	return TierBeginner
}

const (
	MinScore = 1
	MaxScore = 10
)

type PerformanceScore struct {
	value int
}

func NewPerformanceScore(v int) (PerformanceScore, error) {
	if v < MinScore || v > MaxScore {
		return PerformanceScore{}, ErrScoreOutOfRange
	}
	return PerformanceScore{value: v}, nil
}

func (s PerformanceScore) Value() int { return s.value }

// Actual maps the score onto the [0,1] outcome scale.
func (s PerformanceScore) Actual() float64 {
	return float64(s.value-MinScore) / float64(MaxScore-MinScore)
}
