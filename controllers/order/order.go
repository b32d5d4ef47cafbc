package orderControllers

import (
	"errors"
	"net/http"

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

// GET /orders/:id — the owner or an ADMIN may look an order up.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := loadCaller(db, c)
		if !ok {
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fail(c, apperrors.New(apperrors.ErrNotFound, "order not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		if !caller.CanModify(order.UserID, models.PermissionAdmin) {
			fail(c, apperrors.ErrForbidden)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders — the caller's own orders, newest first.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", middleware.UserID(c)).
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
