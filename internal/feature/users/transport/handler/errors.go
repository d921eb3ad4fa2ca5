// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_service/internal/feature/users/transport/http/dto"
	"user_service/internal/shared/apperror"
)

// writeError maps the error kind onto a status code and renders the
// error envelope. Internal failures are logged and answered with a
// generic message so no internals leak to the client.
func writeError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	message := err.Error()

	var status int
	switch kind {
	case apperror.KindInvalidArgument:
		status = http.StatusBadRequest
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindConflict:
		status = http.StatusConflict
	default:
		slog.Error("request failed", "error", err, "path", c.FullPath())
		status = http.StatusInternalServerError
		message = "internal server error"
	}

	c.JSON(status, dto.ErrorResponse{Error: kind.String(), Message: message})
}

// pathID parses the {id} path parameter. A non-numeric id is a client
// error, reported in the same envelope as every other failure.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		writeError(c, apperror.InvalidArgument("invalid id: %s", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}
