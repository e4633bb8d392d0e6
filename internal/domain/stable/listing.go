package stable

import (
	"math"
	"sort"
	"strings"
	"time"

	"stable-booking/internal/domain/review"

	"github.com/google/uuid"
)

type SortMode string

const (
	SortRecent      SortMode = ""
	SortRecommended SortMode = "recommended"
	SortLocation    SortMode = "location"
	SortRating      SortMode = "rating"
	SortDistance    SortMode = "distance"
	SortPriceAsc    SortMode = "price-asc"
	SortPriceDesc   SortMode = "price-desc"
)

// ParseSortMode maps unknown values to recency ordering.
func ParseSortMode(s string) SortMode {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SortRecommended, SortLocation, SortRating, SortDistance, SortPriceAsc, SortPriceDesc:
		return m
	default:
		return SortRecent
	}
}

func (m SortMode) HorseMode() bool {
	return m == SortPriceAsc || m == SortPriceDesc
}

type Mode string

const (
	ModeStables Mode = "stables"
	ModeHorses  Mode = "horses"
)

type Coordinates struct {
	Lat float64
	Lng float64
}

const earthRadiusKm = 6371.0

// DistanceKm is the great-circle distance between two points.
func DistanceKm(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

type Listing struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Location      string
	Description   string
	Coordinates   *Coordinates
	MinPriceCents int
	ActiveHorses  int
	Rating        review.Summary
	DistanceKm    *float64
	CreatedAt     time.Time
}

type HorseListing struct {
	ID                uuid.UUID
	StableID          uuid.UUID
	Name              string
	Breed             string
	PricePerHourCents int
	Tier              *string
	StableName        string
	StableLocation    string
	Rating            review.Summary
	CreatedAt         time.Time
}

// FilterStables keeps stables whose adjusted rating is at least minRating.
func FilterStables(items []Listing, minRating *float64) []Listing {
	if minRating == nil {
		return items
	}
	out := items[:0:0]
	for _, it := range items {
		if it.Rating.Adjusted >= *minRating {
			out = append(out, it)
		}
	}
	return out
}

func FilterHorses(items []HorseListing, minRating *float64) []HorseListing {
	if minRating == nil {
		return items
	}
	out := items[:0:0]
	for _, it := range items {
		if it.Rating.Adjusted >= *minRating {
			out = append(out, it)
		}
	}
	return out
}

// SortStables orders stables in place. Distance sorting needs an origin and
// falls back to location ordering without one.
func SortStables(items []Listing, mode SortMode, origin *Coordinates) {
	if mode == SortDistance && origin == nil {
		mode = SortLocation
	}
	if mode == SortDistance {
		for i := range items {
			if items[i].Coordinates == nil {
				continue
			}
			d := math.Round(DistanceKm(*origin, *items[i].Coordinates)*100) / 100
			items[i].DistanceKm = &d
		}
	}

	newer := func(a, b Listing) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() > b.ID.String()
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch mode {
		case SortRecommended:
			if a.Rating.Adjusted != b.Rating.Adjusted {
				return a.Rating.Adjusted > b.Rating.Adjusted
			}
			if a.Rating.Count != b.Rating.Count {
				return a.Rating.Count > b.Rating.Count
			}
			return newer(a, b)
		case SortLocation:
			la, lb := strings.ToLower(a.Location), strings.ToLower(b.Location)
			if la != lb {
				return la < lb
			}
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortRating:
			if a.Rating.Adjusted != b.Rating.Adjusted {
				return a.Rating.Adjusted > b.Rating.Adjusted
			}
			return newer(a, b)
		case SortDistance:
			switch {
			case a.DistanceKm == nil && b.DistanceKm == nil:
				return newer(a, b)
			case a.DistanceKm == nil:
				return false
			case b.DistanceKm == nil:
				return true
			}
			if *a.DistanceKm != *b.DistanceKm {
				return *a.DistanceKm < *b.DistanceKm
			}
			return newer(a, b)
		default:
			return newer(a, b)
		}
	})
}

func SortHorses(items []HorseListing, mode SortMode) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.PricePerHourCents != b.PricePerHourCents {
			if mode == SortPriceDesc {
				return a.PricePerHourCents > b.PricePerHourCents
			}
			return a.PricePerHourCents < b.PricePerHourCents
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}
