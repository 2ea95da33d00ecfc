package middleware

import (
	"log/slog"
	"net/http"

	"travelmate/internal/handler/httperr"
	"travelmate/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs server-side failures and renders the last public error
// when the handler did not write a response itself.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ge := range c.Errors {
			if resp, ok := ge.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
				logger.Error("request failed",
					slog.String("request_id", GetRequestID(c)),
					slog.String("error", ge.Err.Error()),
					slog.Any("stack", errs.ExtractStackLines(ge.Err, 8)),
				)
			}
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

// CustomRecovery turns a panic into a 500 with the standard error body.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
