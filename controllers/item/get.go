package itemControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/models"
)

// GET /items
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item
		if err := db.Order("created_at desc").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /items/:id
func GetItemByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Item
		if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
