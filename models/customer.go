package models

import (
	"time"
)

type Customer struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	// Optional 1:1 link to a login account.
	UserID *uint `gorm:"uniqueIndex;column:user_id" json:"user_id,omitempty"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
