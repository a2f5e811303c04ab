package handlers

import (
	"log"
	"net/http"
	"strconv"

	"restaurant-orders-api/config"
	"restaurant-orders-api/models"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
}

// GetMenu returns every available menu item sorted by name (public)
func GetMenu(c *gin.Context) {
	items, err := store.ListAvailableMenuItems(config.DB)
	if err != nil {
		log.Printf("Error fetching menu items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem adds a new menu item (manager)
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name, description, price"})
		return
	}
	if *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		IsAvailable: true,
	}
	if err := store.CreateMenuItem(config.DB, &item); err != nil {
		log.Printf("Error creating menu item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem edits an existing menu item (manager)
func UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
			return
		}
		changes["price"] = *req.Price
	}
	if req.IsAvailable != nil {
		changes["is_available"] = *req.IsAvailable
	}
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	item, err := store.UpdateMenuItem(config.DB, uint(id), changes)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		log.Printf("Error updating menu item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem removes a menu item (manager)
func DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item ID"})
		return
	}

	if err := store.DeleteMenuItem(config.DB, uint(id)); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		log.Printf("Error deleting menu item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully", "success": true})
}
