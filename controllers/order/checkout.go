package orderControllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/middleware"
	"github.com/larissavarjao/lvstore-api/models"
	"github.com/larissavarjao/lvstore-api/payment"
)

type CheckoutRequest struct {
	PaymentToken string `json:"payment_token" binding:"required"`
}

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
}

// Checkout charges the caller's cart and turns it into an order.
//
// The charge happens before any local write and is never retried. If the
// order cannot be persisted after the charge was captured, the cart is left
// untouched, the failure is logged for manual reconciliation and surfaced as
// InconsistentState; an automatic refund is deliberately not attempted.
func Checkout(db *gorm.DB, charger payment.Charger, userID, paymentToken string) (models.Order, error) {
	var lines []models.CartItem
	if err := db.Preload("Item").Where("user_id = ?", userID).Find(&lines).Error; err != nil {
		return models.Order{}, err
	}
	if len(lines) == 0 {
		return models.Order{}, apperrors.New(apperrors.ErrValidation, "your cart is empty")
	}

	// Snapshot the line ids now. Lines added while the charge is in flight
	// belong to the next checkout, not this one.
	lineIDs := make([]uint, 0, len(lines))
	amount := 0
	for _, line := range lines {
		lineIDs = append(lineIDs, line.ID)
		amount += line.Item.Price * line.Quantity
	}

	charge, err := charger.Charge(context.Background(), amount, "USD", paymentToken)
	if err != nil {
		return models.Order{}, apperrors.Newf(apperrors.ErrPaymentFailed, "payment failed: %v", err)
	}

	orderItems := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		orderItems = append(orderItems, models.OrderItem{
			ItemID:      line.Item.ID,
			Title:       line.Item.Title,
			Description: line.Item.Description,
			Image:       line.Item.Image,
			LargeImage:  line.Item.LargeImage,
			Price:       line.Item.Price,
			Quantity:    line.Quantity,
		})
	}

	// The provider's echoed amount is the total of record, not the local
	// sum: prices may have moved between the read and the charge.
	order := models.Order{
		UserID: userID,
		Items:  orderItems,
		Total:  charge.Amount,
		Charge: charge.ID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", lineIDs).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		// Money is captured but no order exists. Retrying would bill again,
		// so this is not an ordinary API failure.
		log.Printf("RECONCILE: charge %s for user %s captured but order not persisted: %v", charge.ID, userID, err)
		return models.Order{}, apperrors.Newf(apperrors.ErrInconsistentState,
			"order could not be recorded; do not retry, contact support with charge %s", charge.ID)
	}

	return order, nil
}

// POST /orders/checkout
func CheckoutHandler(db *gorm.DB, charger payment.Charger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := Checkout(db, charger, middleware.UserID(c), req.PaymentToken)
		if err != nil {
			fail(c, err)
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}
