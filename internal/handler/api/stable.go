package api

import (
	"net/http"

	reqdto "stable-booking/internal/handler/dto/request"
	resdto "stable-booking/internal/handler/dto/response"
	"stable-booking/internal/handler/middleware"
	"stable-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StableHandler struct {
	q queries.StableQueries
}

func NewStableHandler(q queries.StableQueries) *StableHandler {
	return &StableHandler{q: q}
}

// @Summary List stables
// @Description Browse stables, or horses when sorting by price
// @Tags stables
// @Produce json
// @Param search query string false "Name or description contains"
// @Param location query string false "Location contains"
// @Param minRating query number false "Minimum adjusted rating (0-5)"
// @Param sort query string false "recommended, location, rating, distance, price-asc or price-desc"
// @Param ownerOnly query bool false "Only stables owned by the caller"
// @Param lat query number false "Latitude for distance sort"
// @Param lng query number false "Longitude for distance sort"
// @Success 200 {object} resdto.StableListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /stables [get]
func (h *StableHandler) List(c *gin.Context) {
	var q reqdto.ListStablesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	var actorID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		actorID = &id
	}

	result, err := h.q.List(c.Request.Context(), queries.ListStablesRequest{
		Search:    q.Search,
		Location:  q.Location,
		MinRating: q.MinRating,
		Sort:      q.Sort,
		OwnerOnly: q.OwnerOnly,
		Lat:       q.Lat,
		Lng:       q.Lng,
	}, actorID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStableList(result))
}
