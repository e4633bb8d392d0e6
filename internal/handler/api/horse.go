package api

import (
	"net/http"

	reqdto "stable-booking/internal/handler/dto/request"
	"stable-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type HorseHandler struct {
	cmds commands.HorseCommands
}

func NewHorseHandler(cmds commands.HorseCommands) *HorseHandler {
	return &HorseHandler{cmds: cmds}
}

// @Summary Assign horse tier
// @Description Set or clear the tier a horse's rides are scored against
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Horse ID"
// @Param request body reqdto.AssignTierRequest true "Tier"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/horses/{id}/tier [put]
func (h *HorseHandler) AssignTier(c *gin.Context) {
	horseID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var body reqdto.AssignTierRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	if err := h.cmds.AssignTier(c.Request.Context(), horseID, body.Tier); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
