package api

import (
	"net/http"

	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// StatusFor maps an error kind onto the HTTP status returned to clients.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorKindValidation:
		return http.StatusBadRequest
	case domain.ErrorKindNotFound:
		return http.StatusNotFound
	case domain.ErrorKindConflict:
		return http.StatusConflict
	case domain.ErrorKindDependency:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError attaches err to the context for the request logger and writes the JSON body.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	kind := domain.KindOf(err)
	c.JSON(StatusFor(kind), errorResponse{Error: err.Error(), Kind: string(kind)})
}

func badRequest(c *gin.Context, message string) {
	writeError(c, domain.Validationf("%s", message))
}
