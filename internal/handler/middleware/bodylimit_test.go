//go:build unit

package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travelmate/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reads the full body and reports 413 when the read fails
func bodyReadingRouter(limit int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.BodyLimit(limit))
	r.POST("/trips", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestBodyLimit(t *testing.T) {
	const limit = 100

	t.Run("small body passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(strings.Repeat("x", 50)))
		rec := httptest.NewRecorder()
		bodyReadingRouter(limit).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("advertised length over the limit is rejected before the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(strings.Repeat("x", 200)))
		req.ContentLength = 200
		rec := httptest.NewRecorder()
		bodyReadingRouter(limit).ServeHTTP(rec, req)

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Request body too large"}}`, rec.Body.String())
	})

	t.Run("streaming body over the limit fails on read", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(strings.Repeat("x", 200)))
		req.ContentLength = -1
		rec := httptest.NewRecorder()
		bodyReadingRouter(limit).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
