//go:build unit

package stable_test

import (
	"testing"
	"time"

	"stable-booking/internal/domain/review"
	"stable-booking/internal/domain/stable"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tokyo    = stable.Coordinates{Lat: 35.6812, Lng: 139.7671}
	yokohama = stable.Coordinates{Lat: 35.4437, Lng: 139.6380}
	base     = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

func listing(name, location string, adjusted float64, count int, createdDays int, coords *stable.Coordinates) stable.Listing {
	return stable.Listing{
		ID:          uuid.New(),
		Name:        name,
		Location:    location,
		Coordinates: coords,
		Rating:      review.Summary{Average: adjusted, Adjusted: adjusted, Count: count},
		CreatedAt:   base.AddDate(0, 0, createdDays),
	}
}

func names(items []stable.Listing) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestParseSortMode(t *testing.T) {
	tests := map[string]stable.SortMode{
		"":            stable.SortRecent,
		"recommended": stable.SortRecommended,
		" Rating ":    stable.SortRating,
		"price-asc":   stable.SortPriceAsc,
		"price-desc":  stable.SortPriceDesc,
		"cheapest":    stable.SortRecent,
	}
	for in, want := range tests {
		assert.Equal(t, want, stable.ParseSortMode(in), in)
	}

	assert.True(t, stable.SortPriceAsc.HorseMode())
	assert.False(t, stable.SortDistance.HorseMode())
}

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, 28.88, stable.DistanceKm(tokyo, yokohama), 0.01)
	assert.InDelta(t, 111.19, stable.DistanceKm(stable.Coordinates{}, stable.Coordinates{Lng: 1}), 0.01)
	assert.Zero(t, stable.DistanceKm(tokyo, tokyo))
}

func TestSortStables(t *testing.T) {
	t.Run("recent by default", func(t *testing.T) {
		items := []stable.Listing{
			listing("Old", "A", 0, 0, 1, nil),
			listing("New", "B", 0, 0, 3, nil),
			listing("Mid", "C", 0, 0, 2, nil),
		}
		stable.SortStables(items, stable.SortRecent, nil)
		assert.Equal(t, []string{"New", "Mid", "Old"}, names(items))
	})

	t.Run("recommended breaks rating ties on review count", func(t *testing.T) {
		items := []stable.Listing{
			listing("Few", "A", 4.5, 2, 3, nil),
			listing("Many", "B", 4.5, 9, 1, nil),
			listing("Top", "C", 4.9, 1, 0, nil),
		}
		stable.SortStables(items, stable.SortRecommended, nil)
		assert.Equal(t, []string{"Top", "Many", "Few"}, names(items))
	})

	t.Run("rating breaks ties on recency", func(t *testing.T) {
		items := []stable.Listing{
			listing("Older", "A", 4.0, 9, 1, nil),
			listing("Newer", "B", 4.0, 1, 2, nil),
			listing("Low", "C", 2.0, 5, 3, nil),
		}
		stable.SortStables(items, stable.SortRating, nil)
		assert.Equal(t, []string{"Newer", "Older", "Low"}, names(items))
	})

	t.Run("location is case insensitive", func(t *testing.T) {
		items := []stable.Listing{
			listing("Zeta", "osaka", 0, 0, 0, nil),
			listing("Beta", "Kyoto", 0, 0, 0, nil),
			listing("Alpha", "Osaka", 0, 0, 0, nil),
		}
		stable.SortStables(items, stable.SortLocation, nil)
		assert.Equal(t, []string{"Beta", "Alpha", "Zeta"}, names(items))
	})

	t.Run("distance puts unknown coordinates last", func(t *testing.T) {
		items := []stable.Listing{
			listing("Nowhere", "X", 0, 0, 5, nil),
			listing("Yokohama", "Y", 0, 0, 0, &yokohama),
			listing("Tokyo", "T", 0, 0, 0, &tokyo),
		}
		stable.SortStables(items, stable.SortDistance, &tokyo)

		assert.Equal(t, []string{"Tokyo", "Yokohama", "Nowhere"}, names(items))
		require.NotNil(t, items[1].DistanceKm)
		assert.InDelta(t, 28.88, *items[1].DistanceKm, 0.001)
		assert.Nil(t, items[2].DistanceKm)
	})

	t.Run("distance without origin falls back to location", func(t *testing.T) {
		items := []stable.Listing{
			listing("B", "Yokohama", 0, 0, 0, &yokohama),
			listing("A", "Tokyo", 0, 0, 0, &tokyo),
		}
		stable.SortStables(items, stable.SortDistance, nil)

		assert.Equal(t, []string{"A", "B"}, names(items))
		assert.Nil(t, items[0].DistanceKm)
	})
}

func TestFilterStables(t *testing.T) {
	items := []stable.Listing{
		listing("High", "A", 4.6, 3, 0, nil),
		listing("Edge", "B", 4.0, 3, 0, nil),
		listing("Low", "C", 3.9, 3, 0, nil),
	}

	assert.Len(t, stable.FilterStables(items, nil), 3)

	minRating := 4.0
	assert.Equal(t, []string{"High", "Edge"}, names(stable.FilterStables(items, &minRating)))
	assert.Len(t, items, 3)
}

func TestSortHorses(t *testing.T) {
	horse := func(name string, price int) stable.HorseListing {
		return stable.HorseListing{ID: uuid.New(), Name: name, PricePerHourCents: price}
	}
	horseNames := func(items []stable.HorseListing) []string {
		out := make([]string, 0, len(items))
		for _, h := range items {
			out = append(out, h.Name)
		}
		return out
	}

	t.Run("ascending with name tiebreak", func(t *testing.T) {
		items := []stable.HorseListing{horse("biscuit", 5000), horse("Apple", 5000), horse("Cheap", 3000)}
		stable.SortHorses(items, stable.SortPriceAsc)
		assert.Equal(t, []string{"Cheap", "Apple", "biscuit"}, horseNames(items))
	})

	t.Run("descending", func(t *testing.T) {
		items := []stable.HorseListing{horse("Cheap", 3000), horse("Pricey", 9000), horse("Mid", 5000)}
		stable.SortHorses(items, stable.SortPriceDesc)
		assert.Equal(t, []string{"Pricey", "Mid", "Cheap"}, horseNames(items))
	})

	t.Run("rating filter", func(t *testing.T) {
		minRating := 3.0
		items := []stable.HorseListing{
			{Name: "Good", Rating: review.Summary{Adjusted: 3.5}},
			{Name: "Bad", Rating: review.Summary{Adjusted: 2.5}},
		}
		assert.Equal(t, []string{"Good"}, horseNames(stable.FilterHorses(items, &minRating)))
	})
}
