package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint renders:
//
//	{"error": {"message": "..."}, "detail": ...}
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// Internal is the body sent for any failure the client cannot act on.
func Internal() Response {
	return New(http.StatusInternalServerError, "Internal server error")
}

// AbortWithError records err on the context for the error middleware and
// writes the public message. err is never shown to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func Abort(c *gin.Context, status int, err error, msg string) {
	AbortWithError(c, status, err, msg, nil)
}
