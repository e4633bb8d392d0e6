package api

import (
	"net/http"

	reqdto "stable-booking/internal/handler/dto/request"
	resdto "stable-booking/internal/handler/dto/response"
	"stable-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Review booking
// @Description Leave a review for the caller's completed booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/review [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var body reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		BookingID: bookingID,
		Rating:    body.Rating,
		Comment:   body.Comment,
	}, actor.ID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{ID: result.ReviewID})
}
