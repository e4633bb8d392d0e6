package response

import (
	"time"

	"stable-booking/internal/domain/review"
	"stable-booking/internal/domain/stable"
	"stable-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingResponse struct {
	// Value is the sentiment-adjusted star rating.
	Value   float64 `json:"value"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type StableListingResponse struct {
	ID            uuid.UUID      `json:"id"`
	OwnerID       uuid.UUID      `json:"ownerId"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	Description   string         `json:"description"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	MinPriceCents int            `json:"minPriceCents"`
	ActiveHorses  int            `json:"activeHorses"`
	Rating        RatingResponse `json:"rating"`
	DistanceKm    *float64       `json:"distanceKm,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type HorseListingResponse struct {
	ID                uuid.UUID      `json:"id"`
	StableID          uuid.UUID      `json:"stableId"`
	Name              string         `json:"name"`
	Breed             string         `json:"breed"`
	PricePerHourCents int            `json:"pricePerHourCents"`
	Tier              *string        `json:"tier,omitempty"`
	StableName        string         `json:"stableName"`
	StableLocation    string         `json:"stableLocation"`
	Rating            RatingResponse `json:"rating"`
	CreatedAt         time.Time      `json:"createdAt"`
}

type StableListResponse struct {
	Mode string `json:"mode"`
	// Exactly one of Stables and Horses is set, matching Mode.
	Stables *[]StableListingResponse `json:"stables,omitempty"`
	Horses  *[]HorseListingResponse  `json:"horses,omitempty"`
}

func FromStableList(r *queries.StableListResult) *StableListResponse {
	out := &StableListResponse{Mode: string(r.Mode)}
	if r.Mode == stable.ModeHorses {
		horses := make([]HorseListingResponse, len(r.Horses))
		for i, h := range r.Horses {
			horses[i] = HorseListingResponse{
				ID:                h.ID,
				StableID:          h.StableID,
				Name:              h.Name,
				Breed:             h.Breed,
				PricePerHourCents: h.PricePerHourCents,
				Tier:              h.Tier,
				StableName:        h.StableName,
				StableLocation:    h.StableLocation,
				Rating:            fromSummary(h.Rating),
				CreatedAt:         h.CreatedAt,
			}
		}
		out.Horses = &horses
		return out
	}

	stables := make([]StableListingResponse, len(r.Stables))
	for i, s := range r.Stables {
		item := StableListingResponse{
			ID:            s.ID,
			OwnerID:       s.OwnerID,
			Name:          s.Name,
			Location:      s.Location,
			Description:   s.Description,
			MinPriceCents: s.MinPriceCents,
			ActiveHorses:  s.ActiveHorses,
			Rating:        fromSummary(s.Rating),
			DistanceKm:    s.DistanceKm,
			CreatedAt:     s.CreatedAt,
		}
		if s.Coordinates != nil {
			lat, lng := s.Coordinates.Lat, s.Coordinates.Lng
			item.Latitude, item.Longitude = &lat, &lng
		}
		stables[i] = item
	}
	out.Stables = &stables
	return out
}

func fromSummary(s review.Summary) RatingResponse {
	return RatingResponse{Value: s.Adjusted, Average: s.Average, Count: s.Count}
}
