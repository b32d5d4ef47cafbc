package models

import "time"

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    string      `gorm:"not null;index" json:"user_id"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total     int         `gorm:"not null" json:"total"`
	Charge    string      `gorm:"not null" json:"charge"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is a by-value copy of an Item at checkout time plus the charged
// quantity. Editing or deleting the source Item later must not change the
// order, so nothing here references the items table.
type OrderItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderID     uint   `gorm:"index" json:"order_id"`
	ItemID      uint   `json:"item_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	LargeImage  string `json:"large_image"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
}
