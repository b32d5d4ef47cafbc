package orderControllers

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/models"
	"github.com/larissavarjao/lvstore-api/payment"
)

type fakeCharger struct {
	calls    int
	amounts  []int
	err      error
	onCharge func()
}

func (f *fakeCharger) Charge(ctx context.Context, amount int, currency, token string) (payment.Charge, error) {
	f.calls++
	f.amounts = append(f.amounts, amount)
	if f.onCharge != nil {
		f.onCharge()
	}
	if f.err != nil {
		return payment.Charge{}, f.err
	}
	return payment.Charge{
		ID:       "ch_test_1",
		Amount:   amount,
		Currency: currency,
		Status:   "succeeded",
	}, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Item{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedCartLine(t *testing.T, db *gorm.DB, userID string, price, quantity int) models.CartItem {
	t.Helper()
	item := models.Item{Title: "item", Price: price, UserID: "seller"}
	require.NoError(t, db.Create(&item).Error)
	line := models.CartItem{UserID: userID, ItemID: item.ID, Quantity: quantity}
	require.NoError(t, db.Create(&line).Error)
	return line
}

func cartCount(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	charger := &fakeCharger{}

	_, err := Checkout(db, charger, "alice", "tok_visa")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Zero(t, charger.calls, "an empty cart must never reach the provider")
}

func TestCheckoutHappyPath(t *testing.T) {
	db := newTestDB(t)
	seedCartLine(t, db, "alice", 500, 2)
	seedCartLine(t, db, "alice", 300, 1)
	charger := &fakeCharger{}

	order, err := Checkout(db, charger, "alice", "tok_visa")
	require.NoError(t, err)

	assert.Equal(t, 1, charger.calls)
	assert.Equal(t, []int{1300}, charger.amounts)
	assert.Equal(t, 1300, order.Total, "total equals the provider's confirmed amount")
	assert.Equal(t, "ch_test_1", order.Charge)
	assert.Len(t, order.Items, 2)

	sum := 0
	for _, line := range order.Items {
		sum += line.Price * line.Quantity
	}
	assert.Equal(t, order.Total, sum, "total equals the snapshot sum")

	assert.EqualValues(t, 0, cartCount(t, db, "alice"), "cart emptied after checkout")

	var persisted models.Order
	require.NoError(t, db.Preload("Items").First(&persisted, "id = ?", order.ID).Error)
	assert.Len(t, persisted.Items, 2)
}

func TestCheckoutSnapshotsAreByValue(t *testing.T) {
	db := newTestDB(t)
	line := seedCartLine(t, db, "alice", 500, 1)
	charger := &fakeCharger{}

	order, err := Checkout(db, charger, "alice", "tok_visa")
	require.NoError(t, err)

	// Edit and delete the source item; the order must not change.
	require.NoError(t, db.Model(&models.Item{}).Where("id = ?", line.ItemID).Update("price", 9999).Error)
	require.NoError(t, db.Delete(&models.Item{}, line.ItemID).Error)

	var persisted models.Order
	require.NoError(t, db.Preload("Items").First(&persisted, "id = ?", order.ID).Error)
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, 500, persisted.Items[0].Price)
}

func TestCheckoutPaymentFailureLeavesCartIntact(t *testing.T) {
	db := newTestDB(t)
	seedCartLine(t, db, "alice", 500, 2)
	charger := &fakeCharger{err: errors.New("card declined")}

	_, err := Checkout(db, charger, "alice", "tok_visa")
	assert.True(t, errors.Is(err, apperrors.ErrPaymentFailed))

	assert.EqualValues(t, 1, cartCount(t, db, "alice"), "cart must survive for a retry")

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders, "no order after a failed charge")
}

func TestCheckoutLineAddedDuringChargeSurvives(t *testing.T) {
	db := newTestDB(t)
	seedCartLine(t, db, "alice", 500, 2)

	var lateLine models.CartItem
	charger := &fakeCharger{}
	charger.onCharge = func() {
		// A concurrent request lands a new line while the charge is in
		// flight. It was not part of the snapshot.
		lateLine = seedCartLine(t, db, "alice", 300, 1)
	}

	order, err := Checkout(db, charger, "alice", "tok_visa")
	require.NoError(t, err)

	assert.Equal(t, 1000, order.Total, "only the snapshotted lines are charged")
	assert.Len(t, order.Items, 1)

	var remaining []models.CartItem
	require.NoError(t, db.Where("user_id = ?", "alice").Find(&remaining).Error)
	require.Len(t, remaining, 1, "the late line must survive the cleanup")
	assert.Equal(t, lateLine.ID, remaining[0].ID)
}

func TestCheckoutPersistFailureAfterChargeIsInconsistentState(t *testing.T) {
	db := newTestDB(t)
	seedCartLine(t, db, "alice", 500, 2)
	charger := &fakeCharger{}

	// Force the order insert to fail after the charge succeeded.
	require.NoError(t, db.Migrator().DropTable(&models.Order{}))

	_, err := Checkout(db, charger, "alice", "tok_visa")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInconsistentState))
	assert.Equal(t, 1, charger.calls, "the charge is never retried")

	assert.EqualValues(t, 1, cartCount(t, db, "alice"), "cart untouched when the transaction rolls back")
}
