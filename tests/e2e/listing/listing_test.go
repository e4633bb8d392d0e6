//go:build e2e

package listing

import (
	"net/http"
	"testing"

	resdto "stable-booking/internal/handler/dto/response"
	"stable-booking/tests/common/dbtest"
	"stable-booking/tests/common/httptest"
	"stable-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ListingE2ESuite struct {
	e2e.SharedSuite
	world   e2e.World
	reviews int
}

func TestListingE2E(t *testing.T) {
	suite.Run(t, new(ListingE2ESuite))
}

func (s *ListingE2ESuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.world = s.SeedWorld()
}

func (s *ListingE2ESuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.world = s.SeedWorld()
}

func ptr[T any](v T) *T { return &v }

// seedRival adds a second owner's stable with a cheaper horse.
func (s *ListingE2ESuite) seedRival() (stableID, horseID uuid.UUID) {
	owner := dbtest.CreateTestUser(s.T(), s.DB, "rival@example.com", "Rita Rival", "stable_owner")
	stableID = dbtest.CreateTestStable(s.T(), s.DB, dbtest.StableFixture{
		OwnerID:   owner,
		Name:      "Pine Hollow",
		Location:  "Nagano",
		Latitude:  ptr(36.65),
		Longitude: ptr(138.18),
	})
	horseID = dbtest.CreateTestHorse(s.T(), s.DB, dbtest.HorseFixture{
		StableID: stableID, Name: "Pepper", PricePerHourCents: 4500, Tier: ptr("Beginner"),
	})
	return stableID, horseID
}

func (s *ListingE2ESuite) review(stableID, horseID uuid.UUID, rating int) {
	b := dbtest.CreateTestBooking(s.T(), s.DB, dbtest.BookingFixture{
		RiderID:    s.world.Rider.ID,
		HorseID:    horseID,
		StableID:   stableID,
		Start:      s.At(-3-s.reviews, 9),
		PriceCents: 5000,
		Status:     "completed",
	})
	s.reviews++
	dbtest.CreateTestReview(s.T(), s.DB, b, s.world.Rider.ID, stableID, &horseID, rating, "")
}

func (s *ListingE2ESuite) list(query, token string) resdto.StableListResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stables"+query, nil, token)
	var resp resdto.StableListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	return resp
}

func (s *ListingE2ESuite) TestListStables() {
	s.Run("anonymous callers see every stable with its summary", func() {
		rival, _ := s.seedRival()
		dbtest.CreateTestHorse(s.T(), s.DB, dbtest.HorseFixture{
			StableID: s.world.StableID, Name: "Retired", PricePerHourCents: 100, Inactive: true,
		})

		resp := s.list("", "")

		s.Equal("stables", resp.Mode)
		s.Nil(resp.Horses)
		s.Require().NotNil(resp.Stables)
		s.Require().Len(*resp.Stables, 2)
		byID := map[uuid.UUID]resdto.StableListingResponse{}
		for _, st := range *resp.Stables {
			byID[st.ID] = st
		}
		willow := byID[s.world.StableID]
		s.Equal(e2e.HorsePriceCents, willow.MinPriceCents)
		s.Equal(1, willow.ActiveHorses)
		s.Equal(0, willow.Rating.Count)
		s.Nil(willow.Latitude)
		pine := byID[rival]
		s.Equal(4500, pine.MinPriceCents)
		s.Require().NotNil(pine.Latitude)
		s.InDelta(36.65, *pine.Latitude, 1e-9)
	})

	s.Run("search and location filters", func() {
		rival, _ := s.seedRival()

		resp := s.list("?search=pine", "")
		s.Require().Len(*resp.Stables, 1)
		s.Equal(rival, (*resp.Stables)[0].ID)

		resp = s.list("?location=hakone", "")
		s.Require().Len(*resp.Stables, 1)
		s.Equal(s.world.StableID, (*resp.Stables)[0].ID)
	})

	s.Run("minimum rating drops weaker stables", func() {
		rival, rivalHorse := s.seedRival()
		s.review(s.world.StableID, s.world.HorseID, 5)
		s.review(s.world.StableID, s.world.HorseID, 5)
		s.review(rival, rivalHorse, 1)

		resp := s.list("?minRating=4", "")

		s.Require().Len(*resp.Stables, 1)
		got := (*resp.Stables)[0]
		s.Equal(s.world.StableID, got.ID)
		s.Equal(2, got.Rating.Count)
		s.InDelta(5.0, got.Rating.Average, 1e-9)
	})

	s.Run("rating sort puts the best reviewed first", func() {
		rival, rivalHorse := s.seedRival()
		s.review(s.world.StableID, s.world.HorseID, 2)
		s.review(rival, rivalHorse, 5)

		resp := s.list("?sort=rating", "")

		s.Require().Len(*resp.Stables, 2)
		s.Equal(rival, (*resp.Stables)[0].ID)
	})

	s.Run("distance is reported from the caller's position", func() {
		rival, _ := s.seedRival()

		resp := s.list("?sort=distance&lat=35.68&lng=139.69", "")

		s.Require().Len(*resp.Stables, 2)
		first := (*resp.Stables)[0]
		s.Equal(rival, first.ID)
		s.Require().NotNil(first.DistanceKm)
		s.Greater(*first.DistanceKm, 100.0)
		s.Nil((*resp.Stables)[1].DistanceKm)
	})

	s.Run("owners can narrow to their own stables", func() {
		s.seedRival()

		resp := s.list("?ownerOnly=true", s.world.Owner.Token)

		s.Require().Len(*resp.Stables, 1)
		s.Equal(s.world.StableID, (*resp.Stables)[0].ID)
	})

	s.Run("owner filter needs a caller", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stables?ownerOnly=true", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("price sort lists horses", func() {
		_, rivalHorse := s.seedRival()

		resp := s.list("?sort=price-asc", "")

		s.Equal("horses", resp.Mode)
		s.Nil(resp.Stables)
		s.Require().NotNil(resp.Horses)
		s.Require().Len(*resp.Horses, 2)
		s.Equal(rivalHorse, (*resp.Horses)[0].ID)
		s.Equal("Pine Hollow", (*resp.Horses)[0].StableName)
		s.Require().NotNil((*resp.Horses)[0].Tier)
		s.Equal("Beginner", *(*resp.Horses)[0].Tier)
		s.Equal(s.world.HorseID, (*resp.Horses)[1].ID)

		resp = s.list("?sort=price-desc", "")
		s.Equal(s.world.HorseID, (*resp.Horses)[0].ID)
	})
}
