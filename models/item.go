package models

import "time"

// Item prices are integer minor currency units (cents).
type Item struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	LargeImage  string    `json:"large_image"`
	Price       int       `gorm:"not null" json:"price"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
