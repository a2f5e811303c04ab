package routes

import (
	"restaurant-orders-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// Auth
		api.POST("/auth/register", handlers.Register)
		api.POST("/auth/login", handlers.Login)

		// Menu
		api.GET("/menu", handlers.GetMenu)
		api.POST("/menu", handlers.CreateMenuItem)
		api.PUT("/menu/:id", handlers.UpdateMenuItem)
		api.DELETE("/menu/:id", handlers.DeleteMenuItem)

		// Orders
		api.GET("/orders", handlers.ListOrders)
		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders/:id", handlers.GetOrder)
		api.PATCH("/orders/:id", handlers.UpdateOrderStatus)
		api.DELETE("/orders/:id", handlers.DeleteOrder)

		// Lifecycle info (great for docs/Postman)
		api.GET("/lifecycle", handlers.GetLifecycle)
	}
}
