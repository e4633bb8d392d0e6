//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"stable-booking/internal/domain/booking"
	"stable-booking/internal/domain/slot"
	"stable-booking/internal/domain/user"
	"stable-booking/internal/handler/api"
	reqdto "stable-booking/internal/handler/dto/request"
	resdto "stable-booking/internal/handler/dto/response"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/usecase/commands"
	"stable-booking/tests/common/httptest"
	"stable-booking/tests/common/testutil"
	commandsmock "stable-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	handlerSuite
	mockSlots *commandsmock.MockSlotCommands
}

func (s *SlotHandlerTestSuite) SetupTest() {
	s.setupRouter()
	s.mockSlots = commandsmock.NewMockSlotCommands(s.mockCtrl)
	h := api.NewSlotHandler(s.mockSlots)

	s.router.GET("/stables/:id/slots", h.List)
	s.router.POST("/stables/:id/slots", s.authMiddleware, h.Create)
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *SlotHandlerTestSuite) TestList() {
	stableID := uuid.New()
	horseID := uuid.New()
	date, _ := slot.ParseDate("2025-03-11")
	start := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	url := "/stables/" + stableID.String() + "/slots?date=2025-03-11"

	views := []slot.View{
		{
			ID: uuid.New(), StableID: stableID, HorseID: horseID, HorseName: "Biscuit", Date: date,
			Start: start, End: start.Add(time.Hour), Status: slot.StatusBooked,
			Booking: &slot.BookingRef{ID: uuid.New(), Status: booking.StatusConfirmed, RiderName: "Aiko"},
		},
		{
			ID: uuid.New(), StableID: stableID, HorseID: horseID, HorseName: "Biscuit", Date: date,
			Start: start.Add(time.Hour), End: start.Add(2 * time.Hour), Status: slot.StatusBlockedSession,
		},
	}

	s.Run("success: returns annotated slots", func() {
		s.mockSlots.EXPECT().
			ListSlots(gomock.Any(), commands.ListSlotsRequest{StableID: stableID, Date: "2025-03-11"}).
			Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("booked", body[0].Status)
		s.Equal("2025-03-11", body[0].Date)
		s.Require().NotNil(body[0].Booking)
		s.Equal("Aiko", body[0].Booking.RiderName)
		s.Equal("blocked_session", body[1].Status)
		s.Nil(body[1].Booking)
	})

	s.Run("success: horse filter is passed through", func() {
		s.mockSlots.EXPECT().
			ListSlots(gomock.Any(), commands.ListSlotsRequest{StableID: stableID, Date: "2025-03-11", HorseID: &horseID}).
			Return([]slot.View{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&horseId="+horseID.String(), nil, "")

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("success: horseId=all means every horse", func() {
		s.mockSlots.EXPECT().
			ListSlots(gomock.Any(), commands.ListSlotsRequest{StableID: stableID, Date: "2025-03-11"}).
			Return([]slot.View{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&horseId=all", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stables/"+stableID.String()+"/slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for a malformed stable id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stables/nope/slots?date=2025-03-11", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 400 for a malformed horse id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"&horseId=pony", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for a bad date format", func() {
		s.mockSlots.EXPECT().ListSlots(gomock.Any(), gomock.Any()).Return(nil, slot.ErrInvalidDate)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stables/"+stableID.String()+"/slots?date=11-03-2025", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, slot.ErrInvalidDate.Error())
	})

	s.Run("error: 404 for an unknown stable", func() {
		s.mockSlots.EXPECT().ListSlots(gomock.Any(), gomock.Any()).Return(nil, errs.ErrStableNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, errs.ErrStableNotFound.Error())
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SlotHandlerTestSuite) TestCreate() {
	stableID := uuid.New()
	url := "/stables/" + stableID.String() + "/slots"
	start := time.Date(2025, 3, 11, 13, 0, 0, 0, time.UTC)
	reqBody := reqdto.CreateSlotsRequest{
		Date:      "2025-03-11",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		HorseID:   "all",
	}

	s.Run("success: returns 201 with the created count", func() {
		s.role = user.RoleStableOwner
		s.mockSlots.EXPECT().
			CreateSlots(gomock.Any(), gomock.Any(), commands.Actor{ID: s.userID, Role: "stable_owner"}).
			DoAndReturn(func(_ context.Context, req commands.CreateSlotsRequest, _ commands.Actor) (*commands.CreateSlotsResult, error) {
				s.Equal(stableID, req.StableID)
				s.Equal("all", req.HorseID)
				s.True(start.Equal(req.StartTime))
				return &commands.CreateSlotsResult{Created: 3}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.CreateSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(3, body.Created)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	missing := []string{"date", "startTime", "endTime", "horseId"}
	for _, field := range missing {
		s.Run("error: 400 without "+field, func() {
			body := testutil.JSONBody(s.T(), reqBody, testutil.Without(field))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, bearer)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not the owner", err: errs.ErrForbidden, status: http.StatusForbidden},
		{name: "end before start", err: slot.ErrInvalidTimeRange, status: http.StatusBadRequest},
		{name: "horse not in stable", err: errs.ErrHorseNotFound, status: http.StatusNotFound},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockSlots.EXPECT().CreateSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
		})
	}
}
