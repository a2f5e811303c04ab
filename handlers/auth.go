package handlers

import (
	"log"
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/models"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email             string      `json:"email" binding:"required,email"`
	FirstName         string      `json:"first_name" binding:"required"`
	LastName          string      `json:"last_name" binding:"required"`
	Password          string      `json:"password" binding:"required,min=6"`
	Role              models.Role `json:"role"`
	WaiterPassphrase  string      `json:"waiterPassphrase"`
	ManagerPassphrase string      `json:"managerPassphrase"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account. Staff roles require the matching
// operator-configured passphrase.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: CUSTOMER, WAITER, or MANAGER"})
		return
	}

	// An unset passphrase disables self-enrollment for that role entirely.
	switch role {
	case models.RoleWaiter:
		if config.C.WaiterPassphrase == "" || req.WaiterPassphrase != config.C.WaiterPassphrase {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid waiter passphrase"})
			return
		}
	case models.RoleManager:
		if config.C.ManagerPassphrase == "" || req.ManagerPassphrase != config.C.ManagerPassphrase {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid manager passphrase"})
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), config.C.BcryptCost)
	if err != nil {
		log.Printf("Registration error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := store.CreateUser(config.DB, &user); err != nil {
		if err == store.ErrDuplicateEmail {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already in use"})
			return
		}
		log.Printf("Registration error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Login verifies credentials and returns the identity record the client
// should persist. No token or server-side session is issued.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	user, err := store.GetUserByEmail(config.DB, req.Email)
	if err != nil {
		// Same message for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"role":       user.Role,
	})
}
