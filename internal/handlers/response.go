package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// respondServiceError maps the service error taxonomy onto status codes:
// NotFound → 404, Conflict and Validation → 400, anything else → 500.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, services.ErrConflict):
		RespondError(c, http.StatusBadRequest, "conflict", err)
	case errors.Is(err, services.ErrValidation):
		RespondError(c, http.StatusBadRequest, "validation_failed", err)
	default:
		if log != nil {
			log.Error("Request failed", "error", err)
		}
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
