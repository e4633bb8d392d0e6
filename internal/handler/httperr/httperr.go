package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Body struct {
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// Response is the error envelope every failed request is answered with.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Body{Message: msg, Detail: detail}}
}

// Internal is the body sent for unexpected failures. Nothing about the cause
// leaks to the client.
func Internal() Response {
	return NewResponse(http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError keeps err on the gin context for logging and answers with
// msg. Server errors are logged here, once.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"status", status,
			"error", err.Error())
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
