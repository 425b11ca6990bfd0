package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"translation-admin-backend/internal/models"
	"translation-admin-backend/internal/projection"
	"translation-admin-backend/internal/store"
	"translation-admin-backend/internal/workflow"
)

type ClientsHandler struct {
	controller *workflow.Controller
	store      *store.Store
}

func NewClientsHandler(controller *workflow.Controller, st *store.Store) *ClientsHandler {
	return &ClientsHandler{controller: controller, store: st}
}

// ListClients serves the active client projection, recomputed from a fresh
// full order fetch on every call.
func (h *ClientsHandler) ListClients(c *gin.Context) {
	if err := h.controller.Refresh(); err != nil {
		respondOperationError(c, "list clients", err)
		return
	}
	clients := projection.ProjectClients(h.store.Orders())
	if clients == nil {
		clients = []models.Client{}
	}
	c.JSON(http.StatusOK, models.ClientListResponse{Clients: clients})
}

// ListArchivedClients serves the archive view: clients whose orders have
// reached the terminal stage.
func (h *ClientsHandler) ListArchivedClients(c *gin.Context) {
	if err := h.controller.Refresh(); err != nil {
		respondOperationError(c, "list archived clients", err)
		return
	}
	clients := projection.ProjectArchivedClients(h.store.Orders())
	if clients == nil {
		clients = []models.Client{}
	}
	c.JSON(http.StatusOK, models.ClientListResponse{Clients: clients})
}

// GetClientProfile resolves an ambiguous identifier (code, name part, or
// company) into one client and its order history.
func (h *ClientsHandler) GetClientProfile(c *gin.Context) {
	identifier := c.Query("identifier")
	if identifier == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "identifier is required"})
		return
	}

	if err := h.controller.Refresh(); err != nil {
		respondOperationError(c, "get client profile", err)
		return
	}

	client, orders, ok := projection.ProjectClientProfile(h.store.Orders(), identifier)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "client not found"})
		return
	}
	c.JSON(http.StatusOK, models.ClientProfileResponse{Client: client, Orders: orders})
}

// UpdateClientInfo edits one client-snapshot field. There is no client record
// to patch; the controller fans the edit out to the client's orders.
func (h *ClientsHandler) UpdateClientInfo(c *gin.Context) {
	var req models.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "update client failed",
			Message: err.Error(),
		})
		return
	}

	if err := h.controller.UpdateClientInfo(c.Param("client_id"), req.Field, req.Value); err != nil {
		respondOperationError(c, "update client", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client updated"})
}

func (h *ClientsHandler) DeleteClient(c *gin.Context) {
	if err := h.controller.DeleteClient(c.Param("client_id")); err != nil {
		respondOperationError(c, "delete client", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
