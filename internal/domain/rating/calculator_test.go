//go:build unit

package rating_test

import (
	"math"
	"testing"

	"stable-booking/internal/domain/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(t *testing.T, v int) rating.PerformanceScore {
	t.Helper()
	s, err := rating.NewPerformanceScore(v)
	require.NoError(t, err)
	return s
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		points    int
		tier      rating.Tier
		score     int
		wantDelta int
		wantTier  rating.Tier
	}{
		{name: "perfect ride on a beginner horse", points: 1000, tier: rating.TierBeginner, score: 10, wantDelta: 17, wantTier: rating.TierBeginner},
		{name: "worst ride on a beginner horse", points: 1000, tier: rating.TierBeginner, score: 1, wantDelta: -7, wantTier: rating.TierBeginner},
		{name: "perfect ride on an intermediate horse", points: 1000, tier: rating.TierIntermediate, score: 10, wantDelta: 30, wantTier: rating.TierBeginner},
		{name: "perfect ride crosses into intermediate", points: 1290, tier: rating.TierAdvanced, score: 10, wantDelta: 38, wantTier: rating.TierIntermediate},
		{name: "rider at zero stays at zero", points: 0, tier: rating.TierBeginner, score: 1, wantDelta: 0, wantTier: rating.TierBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rating.Calculate(tt.points, tt.tier, score(t, tt.score))

			assert.Equal(t, tt.points, got.PreviousPoints)
			assert.Equal(t, tt.wantDelta, got.Delta)
			assert.Equal(t, tt.points+tt.wantDelta, got.NewPoints)
			assert.Equal(t, tt.wantTier, got.Tier)
		})
	}

	t.Run("delta never exceeds the tier K factor", func(t *testing.T) {
		for _, tier := range []rating.Tier{rating.TierBeginner, rating.TierIntermediate, rating.TierAdvanced} {
			k := int(math.Round(rating.BaseK * tier.Multiplier()))
			for _, points := range []int{0, 500, 1000, 1500, 2500} {
				for s := rating.MinScore; s <= rating.MaxScore; s++ {
					got := rating.Calculate(points, tier, score(t, s))
					assert.LessOrEqual(t, abs(got.Delta), k)
					assert.GreaterOrEqual(t, got.NewPoints, 0)
				}
			}
		}
	})

	t.Run("harder horses reward a good ride more", func(t *testing.T) {
		beginner := rating.Calculate(1000, rating.TierBeginner, score(t, 8))
		advanced := rating.Calculate(1000, rating.TierAdvanced, score(t, 8))
		assert.Greater(t, advanced.Delta, beginner.Delta)
	})
}

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, rating.ExpectedScore(1500, rating.TierIntermediate), 1e-9)
	assert.InDelta(t, 0.2966, rating.ExpectedScore(1000, rating.TierBeginner), 1e-4)
}

func TestNewPerformanceScore(t *testing.T) {
	for _, v := range []int{-1, 0, 11} {
		_, err := rating.NewPerformanceScore(v)
		assert.ErrorIs(t, err, rating.ErrScoreOutOfRange, "score %d", v)
	}
	for _, v := range []int{1, 5, 10} {
		s, err := rating.NewPerformanceScore(v)
		require.NoError(t, err)
		assert.Equal(t, v, s.Value())
	}
	assert.InDelta(t, 0.0, score(t, 1).Actual(), 1e-9)
	assert.InDelta(t, 1.0, score(t, 10).Actual(), 1e-9)
}

func TestTierForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   rating.Tier
	}{
		{0, rating.TierBeginner},
		{1000, rating.TierBeginner},
		{1300, rating.TierBeginner},
		{1301, rating.TierIntermediate},
		{1700, rating.TierIntermediate},
		{1701, rating.TierAdvanced},
		{5000, rating.TierAdvanced},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rating.TierForPoints(tt.points), "points %d", tt.points)
	}
}

func TestParseTier(t *testing.T) {
	tier, err := rating.ParseTier("Advanced")
	require.NoError(t, err)
	assert.Equal(t, rating.TierAdvanced, tier)

	for _, s := range []string{"", "advanced", "Expert"} {
		_, err := rating.ParseTier(s)
		assert.ErrorIs(t, err, rating.ErrInvalidTier, "tier %q", s)
	}

	band := rating.BandFor(rating.TierIntermediate)
	assert.Equal(t, 1301, band.Min)
	assert.Equal(t, 1700, band.Max)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
