package middleware

import (
	"log/slog"
	"net/http"

	"stable-booking/internal/handler/httperr"
	"stable-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 16

// ErrorResponder writes the envelope recorded by httperr.AbortWithError when
// nothing downstream has written a body yet.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicError(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if c.Writer.Status() != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

func lastPublicError(c *gin.Context) (httperr.Response, bool) {
	public := c.Errors.ByType(gin.ErrorTypePublic)
	for i := len(public) - 1; i >= 0; i-- {
		if resp, ok := public[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// Recovery turns a panic anywhere below it into a logged 500.
// It has to be registered first so it wraps every other middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			err := errs.Recovered(v)
			logger.ErrorContext(c.Request.Context(), "panic recovered",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err.Error(),
				"stack", errs.StackLines(err, panicStackLines))

			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
		}()
		c.Next()
	}
}
