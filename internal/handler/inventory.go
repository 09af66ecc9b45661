package handler

import (
	"net/http"

	"github.com/mturke1996/al-fahed/internal/apierror"
	"github.com/mturke1996/al-fahed/internal/dto"
	"github.com/mturke1996/al-fahed/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// RecordMovement POST /v1/inventory/movements
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req dto.CreateMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordMovement(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMovements GET /v1/inventory/movements
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	if productID := c.Query("productId"); productID != "" {
		id, err := uuid.Parse(productID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid productId"))
			return
		}
		resp, svcErr := h.svc.ListByProduct(c.Request.Context(), id)
		if svcErr != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("failed to list movements"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.ListMovements(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list movements"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LowStock GET /v1/inventory/low-stock
func (h *InventoryHandler) LowStock(c *gin.Context) {
	resp, err := h.svc.LowStockAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute low stock alerts"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
