package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/middleware"
	"github.com/larissavarjao/lvstore-api/models"
)

type AddCartItemRequest struct {
	ItemID uint `json:"item_id" binding:"required"`
}

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
}

// AddToCart merges an item into the user's cart: an existing line for the
// same item gains one to its quantity, otherwise a new line starts at one.
// Calling it twice yields one line with quantity 2, never two lines.
func AddToCart(db *gorm.DB, userID string, itemID uint) (models.CartItem, error) {
	var item models.Item
	if err := db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, apperrors.New(apperrors.ErrNotFound, "item not found")
		}
		return models.CartItem{}, err
	}

	var line models.CartItem
	err := db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&line).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, err
		}
		line = models.CartItem{
			UserID:   userID,
			ItemID:   itemID,
			Quantity: 1,
		}
		if err := db.Create(&line).Error; err != nil {
			return models.CartItem{}, err
		}
		line.Item = item
		return line, nil
	}

	line.Quantity++
	if err := db.Save(&line).Error; err != nil {
		return models.CartItem{}, err
	}
	line.Item = item
	return line, nil
}

// RemoveFromCart deletes a whole cart line. Quantities are never
// decremented through this path.
func RemoveFromCart(db *gorm.DB, userID string, cartItemID uint) error {
	var line models.CartItem
	if err := db.First(&line, "id = ?", cartItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.ErrNotFound, "cart item not found")
		}
		return err
	}
	if line.UserID != userID {
		return apperrors.ErrForbidden
	}
	return db.Delete(&line).Error
}

// POST /cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		line, err := AddToCart(db, middleware.UserID(c), req.ItemID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// DELETE /cart/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri struct {
			ID uint `uri:"id" binding:"required"`
		}
		if err := c.ShouldBindUri(&uri); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart item id is required"})
			return
		}

		if err := RemoveFromCart(db, middleware.UserID(c), uri.ID); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lines []models.CartItem
		if err := db.Preload("Item").
			Where("user_id = ?", middleware.UserID(c)).
			Order("created_at asc").
			Find(&lines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}
