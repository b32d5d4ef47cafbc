package itemControllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/middleware"
	"github.com/larissavarjao/lvstore-api/models"
)

func loadCaller(db *gorm.DB, c *gin.Context) (models.User, bool) {
	var caller models.User
	if err := db.First(&caller, "id = ?", middleware.UserID(c)).Error; err != nil {
		fail(c, apperrors.ErrUnauthenticated)
		return models.User{}, false
	}
	return caller, true
}

// DeleteItem removes an item if the caller owns it or holds ADMIN or
// ITEMDELETE. The Forbidden result carries no detail about the item.
func DeleteItem(db *gorm.DB, caller models.User, itemID string) (models.Item, error) {
	var item models.Item
	if err := db.First(&item, "id = ?", itemID).Error; err != nil {
		return models.Item{}, apperrors.New(apperrors.ErrNotFound, "item not found")
	}

	if !caller.CanModify(item.UserID, models.PermissionAdmin, models.PermissionItemDelete) {
		return models.Item{}, apperrors.ErrForbidden
	}

	if err := db.Delete(&item).Error; err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// DELETE /items/:id — auth + owner or {ADMIN, ITEMDELETE}.
func DeleteItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := loadCaller(db, c)
		if !ok {
			return
		}

		item, err := DeleteItem(db, caller, c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(200, gin.H{"message": "Item deleted", "id": item.ID, "title": item.Title})
	}
}
