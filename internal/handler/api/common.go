package api

import (
	"net/http"
	"strconv"
	"strings"

	"travelmate/internal/handler/httperr"
	"travelmate/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errMissingQuery = errs.New("missing query parameter")

// pathID reads a positive integer path parameter. On failure it aborts with
// 400 and reports false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.Newf("non-positive %s %d", name, id)
		}
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// abortWithUsecaseError maps usecase failures onto the HTTP taxonomy.
// Anything unclassified is a 500 carrying internalMsg.
func abortWithUsecaseError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.Abort(c, http.StatusNotFound, err, sentence(err))
	case errs.Is(err, errs.ErrConflict):
		httperr.Abort(c, http.StatusConflict, err, sentence(err))
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.Abort(c, http.StatusBadRequest, err, sentence(err))
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, internalMsg)
	}
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// abortWithBindError reports a request body that failed to decode or
// validate. Bodies cut off by the size limit get 413 instead of 400.
// Validation failures list the offending fields in detail.
func abortWithBindError(c *gin.Context, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errs.As(err, &tooLarge) {
		httperr.Abort(c, http.StatusRequestEntityTooLarge, err, "Request body too large")
		return
	}
	var invalid validator.ValidationErrors
	if errs.As(err, &invalid) {
		detail := make([]fieldError, 0, len(invalid))
		for _, fe := range invalid {
			detail = append(detail, fieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, detail)
		return
	}
	httperr.Abort(c, http.StatusBadRequest, err, msg)
}

func sentence(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
