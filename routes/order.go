package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/larissavarjao/lvstore-api/controllers/order"
	"github.com/larissavarjao/lvstore-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth)
	{
		orders.POST("/checkout", orderControllers.CheckoutHandler(db, deps.Charger))
		orders.GET("", orderControllers.GetUserOrders(db))

		// Admin surfaces: spreadsheet export and the live order feed.
		orders.GET("/export", orderControllers.ExportOrdersToExcel(db))
		orders.GET("/ws", orderControllers.OrderFeedHandler(db))

		orders.GET("/:id", orderControllers.GetOrderByID(db))
	}
}
