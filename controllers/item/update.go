package itemControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/models"
)

type UpdateItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	LargeImage  *string `json:"large_image"`
	Price       *int    `json:"price"`
}

// UpdateItem applies the owner-or-permission rule before writing. The
// original service skipped this check on updates; deletion and update now
// share the same rule.
func UpdateItem(db *gorm.DB, caller models.User, itemID string, req UpdateItemRequest) (models.Item, error) {
	var item models.Item
	if err := db.First(&item, "id = ?", itemID).Error; err != nil {
		return models.Item{}, apperrors.New(apperrors.ErrNotFound, "item not found")
	}

	if !caller.CanModify(item.UserID, models.PermissionAdmin, models.PermissionItemUpdate) {
		return models.Item{}, apperrors.ErrForbidden
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.LargeImage != nil {
		updates["large_image"] = *req.LargeImage
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return models.Item{}, apperrors.New(apperrors.ErrValidation, "price must not be negative")
		}
		updates["price"] = *req.Price
	}

	if len(updates) > 0 {
		if err := db.Model(&item).Updates(updates).Error; err != nil {
			return models.Item{}, err
		}
	}
	return item, nil
}

// PUT /items/:id — auth + owner or {ADMIN, ITEMUPDATE}.
func UpdateItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := loadCaller(db, c)
		if !ok {
			return
		}

		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item, err := UpdateItem(db, caller, c.Param("id"), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
