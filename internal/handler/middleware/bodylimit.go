package middleware

import (
	"net/http"

	"travelmate/internal/handler/httperr"
	"travelmate/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var ErrBodyTooLarge = errs.New("request body too large")

// BodyLimit rejects requests that advertise a body above limit bytes and caps
// the rest with http.MaxBytesReader, so a lying client fails on decode.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			httperr.Abort(c, http.StatusRequestEntityTooLarge, ErrBodyTooLarge, "Request body too large")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
