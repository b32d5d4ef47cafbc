package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/larissavarjao/lvstore-api/controllers/cart"
	"github.com/larissavarjao/lvstore-api/middleware"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.RequireAuth)
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddCartItem(db))
		cart.DELETE("/:id", cartControllers.RemoveCartItem(db))
	}
}
