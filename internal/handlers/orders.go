package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"translation-admin-backend/internal/models"
	"translation-admin-backend/internal/store"
	"translation-admin-backend/internal/workflow"
)

const defaultPerPage = 20

type OrdersHandler struct {
	controller *workflow.Controller
	store      *store.Store
}

func NewOrdersHandler(controller *workflow.Controller, st *store.Store) *OrdersHandler {
	return &OrdersHandler{controller: controller, store: st}
}

// ListOrders reloads the full order list from the backend and serves it with
// optional status/clientId filters and local pagination. Fetching everything
// first is deliberate: the same snapshot feeds the client projections.
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	if err := h.controller.Refresh(); err != nil {
		respondOperationError(c, "list orders", err)
		return
	}

	status := c.Query("status")
	clientID := c.Query("clientId")

	var filtered []models.Order
	for _, o := range h.store.Orders() {
		if status != "" && o.Status != status {
			continue
		}
		if clientID != "" && o.ClientID != clientID {
			continue
		}
		filtered = append(filtered, o)
	}

	perPage := queryInt(c, "perPage", defaultPerPage)
	page := queryInt(c, "page", 1)
	total := len(filtered)
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	pageOrders := filtered[start:end]
	if pageOrders == nil {
		pageOrders = []models.Order{}
	}

	c.JSON(http.StatusOK, models.OrderListResponse{
		Orders:      pageOrders,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		PerPage:     perPage,
	})
}

func (h *OrdersHandler) GetOrder(c *gin.Context) {
	if err := h.controller.Refresh(); err != nil {
		respondOperationError(c, "get order", err)
		return
	}

	order, ok := h.store.Get(c.Param("order_id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder runs the order wizard: validation happens locally before any
// network call, then the backend creates the order and client atomically.
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var data models.CreateUnifiedOrderData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "create order failed",
			Message: err.Error(),
		})
		return
	}

	result, err := h.controller.CreateOrder(data)
	if err != nil {
		respondOperationError(c, "create order", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *OrdersHandler) UpdateOrderField(c *gin.Context) {
	var req models.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "update order failed",
			Message: err.Error(),
		})
		return
	}

	if err := h.controller.UpdateOrderField(c.Param("order_id"), req.Field, req.Value); err != nil {
		respondOperationError(c, "update order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order updated"})
}

func (h *OrdersHandler) DeleteOrder(c *gin.Context) {
	if err := h.controller.DeleteOrder(c.Param("order_id")); err != nil {
		respondOperationError(c, "delete order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

// RefreshOrders re-fetches the full order list into the cache on demand.
func (h *OrdersHandler) RefreshOrders(c *gin.Context) {
	if err := h.controller.Refresh(); err != nil {
		respondOperationError(c, "refresh orders", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "orders refreshed", "count": h.store.Len()})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
