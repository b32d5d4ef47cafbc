package models

import "time"

type User struct {
	ID               string       `gorm:"primaryKey" json:"id"`
	Email            string       `gorm:"uniqueIndex;not null" json:"email"`
	Name             string       `json:"name"`
	Password         string       `gorm:"not null" json:"-"`
	Permissions      []Permission `gorm:"serializer:json" json:"permissions"`
	ResetToken       *string      `json:"-"`
	ResetTokenExpiry *time.Time   `json:"-"`
	Items            []Item       `gorm:"foreignKey:UserID" json:"items,omitempty"`
	Orders           []Order      `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// PublicUser is the shape returned by admin user listings. Password hash and
// reset fields never leave the models package.
type PublicUser struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"created_at"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
	}
}
