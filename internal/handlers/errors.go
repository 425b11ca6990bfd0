package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"translation-admin-backend/internal/cms"
	"translation-admin-backend/internal/models"
	"translation-admin-backend/internal/workflow"
)

// respondOperationError maps workflow and backend failures onto HTTP
// responses. Staff see a generic per-operation message; the backend's
// structured message is surfaced when it sent one, raw rejection bodies
// never are.
func respondOperationError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, workflow.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
	case errors.Is(err, workflow.ErrInvalidTransition):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   operation + " failed",
			Message: err.Error(),
		})
	case errors.Is(err, workflow.ErrValidation),
		errors.Is(err, workflow.ErrFieldNotEditable),
		errors.Is(err, workflow.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   operation + " failed",
			Message: err.Error(),
		})
	default:
		resp := models.ErrorResponse{Error: operation + " failed"}
		var remote *cms.RemoteError
		if errors.As(err, &remote) && remote.Message != "" {
			resp.Message = remote.Message
		}
		c.JSON(http.StatusBadGateway, resp)
	}
}
