package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"institute-registry-backend/internal/store"
	"institute-registry-backend/internal/validate"
)

// Problem is the uniform error body. Validation failures additionally carry a
// field -> message map.
type Problem struct {
	Status int               `json:"status"`
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

func abortWithProblem(c *gin.Context, status int, detail string, fields map[string]string) {
	c.AbortWithStatusJSON(status, Problem{Status: status, Detail: detail, Errors: fields})
}

// abortWithError translates a service error into the problem taxonomy.
// Nothing else crosses the boundary unformatted.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrBadKey):
		abortWithProblem(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, store.ErrNotFound):
		abortWithProblem(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, store.ErrConflict):
		abortWithProblem(c, http.StatusConflict, err.Error(), nil)
	default:
		abortWithProblem(c, http.StatusInternalServerError, "internal error", nil)
	}
}

// abortWithBindError handles request body decoding and validation failures.
func abortWithBindError(c *gin.Context, err error) {
	if fields := validate.FieldErrors(err); fields != nil {
		abortWithProblem(c, http.StatusBadRequest, "request validation failed", fields)
		return
	}
	abortWithProblem(c, http.StatusBadRequest, "malformed request body", nil)
}

// pathID parses the :id path parameter. A non-numeric id is a 400, not a 404.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithProblem(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}
