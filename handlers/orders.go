package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"restaurant-orders-api/config"
	"restaurant-orders-api/lifecycle"
	"restaurant-orders-api/models"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

type OrderItemInput struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Email       string           `json:"email" binding:"required,email"`
	Address     string           `json:"address" binding:"required"`
	Date        string           `json:"date" binding:"required"`
	Description string           `json:"description"`
	OrderItems  []OrderItemInput `json:"orderItems" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// ListOrders returns all orders, or only the given user's when the email
// query parameter is set. Newest first.
func ListOrders(c *gin.Context) {
	var (
		orders []models.Order
		err    error
	)
	if email := c.Query("email"); email != "" {
		orders, err = store.ListOrdersByEmail(config.DB, email)
	} else {
		orders, err = store.ListOrders(config.DB)
	}
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder places a new order in status PENDING. The order row and all
// of its items are written in one transaction.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	date, err := parseOrderDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	user, err := store.GetUserByEmail(config.DB, req.Email)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("Error creating order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	order := models.Order{
		Address:     req.Address,
		Date:        date,
		Description: req.Description,
		Status:      models.StatusPending,
		UserID:      user.ID,
	}
	for _, item := range req.OrderItems {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	if err := store.CreateOrderWithItems(config.DB, &order); err != nil {
		if err == store.ErrMenuItemRef {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown menu item in order"})
			return
		}
		log.Printf("Error creating order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	created, err := store.GetOrderByID(config.DB, order.ID)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetOrder returns a single order with its items and menu details.
func GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := store.GetOrderByID(config.DB, id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Error fetching order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves an order to the requested status and returns the
// updated order joined with its items.
func UpdateOrderStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !lifecycle.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	order, err := store.GetOrderByID(config.DB, id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Error updating order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := lifecycle.CanTransition(order.Status, req.Status, config.C.StrictStatusFlow); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": lifecycle.NextStatuses(order.Status),
		})
		return
	}

	updated, err := store.UpdateOrderStatus(config.DB, id, req.Status)
	if err != nil {
		log.Printf("Error updating order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteOrder hard-deletes an order and its items.
func DeleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := store.DeleteOrder(config.DB, id); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Error deleting order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully", "success": true})
}

// GetLifecycle documents the intended order lifecycle (informational)
func GetLifecycle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses":        lifecycle.AllStatuses,
		"transitions":     lifecycle.Graph(),
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
		"strict":          config.C.StrictStatusFlow,
	})
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

func parseOrderDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
