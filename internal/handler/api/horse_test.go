//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stable-booking/internal/domain/rating"
	"stable-booking/internal/handler/api"
	"stable-booking/internal/pkg/errs"
	"stable-booking/tests/common/httptest"
	commandsmock "stable-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HorseHandlerTestSuite struct {
	handlerSuite
	mockHorses *commandsmock.MockHorseCommands
}

func (s *HorseHandlerTestSuite) SetupTest() {
	s.setupRouter()
	s.mockHorses = commandsmock.NewMockHorseCommands(s.mockCtrl)
	h := api.NewHorseHandler(s.mockHorses)

	s.router.PUT("/horses/:id/tier", s.authMiddleware, h.AssignTier)
}

func TestHorseHandlerSuite(t *testing.T) {
	suite.Run(t, new(HorseHandlerTestSuite))
}

func (s *HorseHandlerTestSuite) TestAssignTier() {
	horseID := uuid.New()
	url := "/horses/" + horseID.String() + "/tier"

	s.Run("success: sets the tier", func() {
		tier := "Advanced"
		s.mockHorses.EXPECT().AssignTier(gomock.Any(), horseID, &tier).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tier": tier}, bearer)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("success: null clears the tier", func() {
		s.mockHorses.EXPECT().AssignTier(gomock.Any(), horseID, gomock.Nil()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tier": nil}, bearer)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for an unknown tier", func() {
		s.mockHorses.EXPECT().AssignTier(gomock.Any(), horseID, gomock.Any()).Return(rating.ErrInvalidTier)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tier": "Expert"}, bearer)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, rating.ErrInvalidTier.Error())
	})

	s.Run("error: 400 for a malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tier": 3}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for an unknown horse", func() {
		s.mockHorses.EXPECT().AssignTier(gomock.Any(), horseID, gomock.Any()).Return(errs.ErrHorseNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tier": "Beginner"}, bearer)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, errs.ErrHorseNotFound.Error())
	})
}
