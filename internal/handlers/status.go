package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"translation-admin-backend/internal/middleware"
	"translation-admin-backend/internal/models"
	"translation-admin-backend/internal/workflow"
)

type StatusHandler struct {
	controller *workflow.Controller
}

func NewStatusHandler(controller *workflow.Controller) *StatusHandler {
	return &StatusHandler{controller: controller}
}

// Transition moves an order to the requested stage. The acting staff member
// comes from the auth token, not the request body. A failed archive side
// effect after a successful ready transition comes back as a warning, not an
// error; the transition itself stands.
func (h *StatusHandler) Transition(c *gin.Context) {
	staffID, exists := c.Get(middleware.StaffIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "staff id not found"})
		return
	}

	var req models.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "status update failed",
			Message: err.Error(),
		})
		return
	}

	orderID := c.Param("order_id")
	err := h.controller.Transition(orderID, workflow.Status(req.Status), staffID.(string), req.Notes)
	if err != nil && !errors.Is(err, workflow.ErrArchiveSideEffect) {
		respondOperationError(c, "status update", err)
		return
	}

	resp := models.TransitionResponse{OrderID: orderID, Status: req.Status}
	if err != nil {
		resp.Warning = "client archive update failed; order status was updated"
	}
	c.JSON(http.StatusOK, resp)
}
