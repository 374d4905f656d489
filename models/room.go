package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
)

const (
	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusMaintenance = "maintenance"
)

// ValidRoomType reports whether t is one of the known room types.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

type Room struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	RoomNumber string  `gorm:"column:room_number;uniqueIndex;size:10;not null" json:"room_number"`
	Type       string  `gorm:"size:50;not null" json:"type"`
	Price      float64 `gorm:"not null" json:"price"` // per night
	Status     string  `gorm:"size:20;default:available" json:"status"`

	Description string         `gorm:"type:text" json:"description"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
