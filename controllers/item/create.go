package itemControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/middleware"
	"github.com/larissavarjao/lvstore-api/models"
)

type CreateItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	LargeImage  string `json:"large_image"`
	Price       int    `json:"price" binding:"min=0"`
}

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
}

// POST /items — auth required; the caller becomes the owner.
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.Item{
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
			LargeImage:  req.LargeImage,
			Price:       req.Price,
			UserID:      middleware.UserID(c),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}
