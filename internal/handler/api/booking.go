package api

import (
	"net/http"

	reqdto "stable-booking/internal/handler/dto/request"
	resdto "stable-booking/internal/handler/dto/response"
	"stable-booking/internal/handler/httperr"
	"stable-booking/internal/usecase/commands"
	"stable-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a horse for one slot hour
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var body reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), commands.CreateBookingRequest{
		HorseID:   body.HorseID,
		StartTime: body.StartTime,
	}, actor.ID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary List my bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}

	items, next, err := h.q.ListMine(c.Request.Context(), actor.ID, cursor, q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromBookingList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Get a booking visible to its rider, the stable owner or an admin
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	h.respondWithBooking(c, actor, id)
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking as its rider, the stable owner or an admin
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.CancelBooking(c.Request.Context(), id, actor); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondWithBooking(c, actor, id)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, actor commands.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id, actor.ID, actor.Role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
