package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojatec/lojatec-api/models"
	"github.com/lojatec/lojatec-api/storage"
)

// UpdateOrderStatusRequest is the PATCH /api/orders/:id/status body.
// Any known status is accepted from any prior state; there is no
// transition graph.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// GetOrders handles GET /api/orders, newest first
func GetOrders(c *gin.Context) {
	orders, err := store.GetOrders(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id
func GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := store.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		log.Printf("Failed to fetch order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder handles POST /api/orders - the checkout submission. The
// submitted items are embedded verbatim as a permanent snapshot and the
// status defaults to pending.
func CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data"})
		return
	}

	order, err := store.CreateOrder(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data"})
			return
		}
		log.Printf("Order creation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status
func UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update order status"})
		return
	}

	order, err := store.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		case errors.Is(err, storage.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update order status"})
		default:
			log.Printf("Failed to update order %d status: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
		}
		return
	}
	c.JSON(http.StatusOK, order)
}
