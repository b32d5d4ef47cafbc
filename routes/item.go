package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	itemControllers "github.com/larissavarjao/lvstore-api/controllers/item"
	"github.com/larissavarjao/lvstore-api/middleware"
)

func SetupItemRoutes(r *gin.Engine, db *gorm.DB) {
	// Browsing is public.
	r.GET("/items", itemControllers.GetItems(db))
	r.GET("/items/:id", itemControllers.GetItemByID(db))

	items := r.Group("/items")
	items.Use(middleware.RequireAuth)
	{
		items.POST("", itemControllers.CreateItem(db))
		items.PUT("/:id", itemControllers.UpdateItemHandler(db))
		items.DELETE("/:id", itemControllers.DeleteItemHandler(db))
	}
}
