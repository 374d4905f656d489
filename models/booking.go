package models

import (
	"time"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Booking reserves one room for [check_in, check_out). check_in < check_out
// always holds for persisted rows.
type Booking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`

	CustomerID uint `gorm:"index;column:customer_id;not null" json:"customer_id"`
	RoomID     uint `gorm:"index;column:room_id;not null" json:"room_id"`

	CheckIn  time.Time `gorm:"column:check_in;not null" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out;not null" json:"check_out"`

	Status        string `gorm:"size:20;default:confirmed" json:"status"`
	PaymentStatus string `gorm:"column:payment_status;size:20;default:unpaid" json:"payment_status"`
	PaymentMethod string `gorm:"column:payment_method;size:50" json:"payment_method,omitempty"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Room     Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
