package api

import (
	"errors"
	"net/http"

	"stable-booking/internal/handler/httperr"
	"stable-booking/internal/handler/middleware"
	"stable-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingIdentity = errors.New("authenticated identity missing from context")

// actorFrom reads the identity set by the auth middleware. A missing identity
// means the route was registered without RequireAuth.
func actorFrom(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return commands.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return commands.Actor{}, false
	}
	return commands.Actor{ID: userID, Role: role.String()}, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
