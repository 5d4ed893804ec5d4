package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/khushi161014/studio-treta/controllers/order"
	"github.com/khushi161014/studio-treta/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Guest checkout: creating an order needs no auth
		orders.POST("", orderControllers.CreateOrderHandler(db))

		// websocket endpoint for real-time order updates, admin only
		orders.GET("/ws", middleware.RequireAdmin, orderControllers.OrderWebSocketHandler)

		// Listing orders is admin only
		orders.GET("", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(db))
	}
}
