package api

import (
	"net/http"

	reqdto "stable-booking/internal/handler/dto/request"
	resdto "stable-booking/internal/handler/dto/response"
	"stable-booking/internal/handler/httperr"
	"stable-booking/internal/usecase/commands"
	"stable-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	scoring commands.ScoringCommands
	q       queries.LeaderboardQueries
}

func NewLeaderboardHandler(scoring commands.ScoringCommands, q queries.LeaderboardQueries) *LeaderboardHandler {
	return &LeaderboardHandler{scoring: scoring, q: q}
}

// @Summary Leaderboard
// @Description Riders ordered by rank points
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of riders (1-100)"
// @Success 200 {array} resdto.LeaderboardEntryResponse
// @Failure 400 {object} httperr.Response
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Top(c *gin.Context) {
	var q reqdto.LeaderboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	entries, err := h.q.Top(c.Request.Context(), q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromLeaderboard(entries)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Score ride
// @Description Record a rider performance score for a booking and update the rider's rank points
// @Tags leaderboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScoreRideRequest true "Ride score"
// @Success 200 {object} resdto.ScoreRideResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /leaderboard/score [post]
func (h *LeaderboardHandler) Score(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var body reqdto.ScoreRideRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.scoring.ScoreRide(c.Request.Context(), commands.ScoreRideRequest{
		BookingID: body.BookingID,
		Score:     *body.RPS,
	}, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScoreRideResult(result))
}
