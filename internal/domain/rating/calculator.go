package rating

import "math"

const (
	BaseK         = 32.0
	DefaultPoints = 1000
)

type Outcome struct {
	PreviousPoints int
	Delta          int
	NewPoints      int
	Tier           Tier
}

// ExpectedScore is the Elo expectation of a rider with points against a horse
// of the given tier.
func ExpectedScore(points int, horse Tier) float64 {
	return 1 / (1 + math.Pow(10, (horse.Rating()-float64(points))/400))
}

// Calculate applies one scored ride to a rider's rank points. The result is
// floored at zero and the delta reflects the floor.
func Calculate(points int, horse Tier, score PerformanceScore) Outcome {
	k := BaseK * horse.Multiplier()
	delta := int(math.Round(k * (score.Actual() - ExpectedScore(points, horse))))

	next := points + delta
	if next < 0 {
		next = 0
		delta = next - points
	}

	return Outcome{
		PreviousPoints: points,
		Delta:          delta,
		NewPoints:      next,
		Tier:           TierForPoints(next),
	}
}
