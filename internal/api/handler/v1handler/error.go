package v1handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"accounts/pkg/domain"
	"accounts/pkg/logger"
	"accounts/pkg/serrors"
)

// ErrorResponse is the body rendered for every failed request. Code is the
// stable contract clients key off; Message is human-readable and may change.
type ErrorResponse struct {
	Code    domain.Code `json:"code"`
	Message string      `json:"message"`
	Path    string      `json:"path"`
}

// respondError translates a use-case error into an HTTP status and body.
// Unexpected errors render a generic message, internals never leak to
// clients.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	}

	message := "unexpected error"
	if status != http.StatusInternalServerError {
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			message = se.Message()
		}
	} else {
		logger.Error(c.Request.Context(), "request failed", zap.Error(err))
	}

	c.JSON(status, ErrorResponse{
		Code:    serrors.CodeOf(err),
		Message: message,
		Path:    c.Request.URL.Path,
	})
}
