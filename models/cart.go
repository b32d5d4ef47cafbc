package models

import "time"

// CartItem is one line of a user's cart. At most one line exists per
// (user, item) pair; the aggregator merges repeated adds into Quantity and
// the composite index backstops concurrent adds. Quantity is always >= 1,
// removal deletes the whole line.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	ItemID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"item_id"`
	Item      Item      `gorm:"foreignKey:ItemID" json:"item"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
