package api

import (
	"net/http"

	reqdto "stable-booking/internal/handler/dto/request"
	resdto "stable-booking/internal/handler/dto/response"
	"stable-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slots commands.SlotCommands
}

func NewSlotHandler(slots commands.SlotCommands) *SlotHandler {
	return &SlotHandler{slots: slots}
}

// @Summary List slots
// @Description Reconcile and return the stable's slots for a date
// @Tags slots
// @Produce json
// @Param id path string true "Stable ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param horseId query string false "Horse ID or all"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stables/{id}/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	stableID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var q reqdto.ListSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	req := commands.ListSlotsRequest{StableID: stableID, Date: q.Date}
	if q.HorseID != "" && q.HorseID != commands.AllHorses {
		horseID, err := uuid.Parse(q.HorseID)
		if err != nil {
			abortInvalidRequest(c, err)
			return
		}
		req.HorseID = &horseID
	}

	views, err := h.slots.ListSlots(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Create slots
// @Description Insert manual slots for one horse or every active horse of the stable
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stable ID"
// @Param request body reqdto.CreateSlotsRequest true "Slots to create"
// @Success 201 {object} resdto.CreateSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stables/{id}/slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	stableID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var body reqdto.CreateSlotsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.slots.CreateSlots(c.Request.Context(), commands.CreateSlotsRequest{
		StableID:  stableID,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		HorseID:   body.HorseID,
		Duration:  body.Duration,
	}, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateSlotsResponse{Created: result.Created})
}
