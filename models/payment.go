package models

import (
	"time"
)

const (
	PaymentMethodCreditCard = "credit card"
	PaymentMethodPaypal     = "paypal"
	PaymentMethodCash       = "cash"
	PaymentMethodOther      = "other"
)

// Payment is the completed charge for one booking. booking_id carries a unique
// index: at most one payment per booking.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BookingID   uint      `gorm:"column:booking_id;uniqueIndex;not null" json:"booking_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	PaymentDate time.Time `gorm:"column:payment_date;not null" json:"payment_date"`
	Method      string    `gorm:"size:50;not null" json:"method"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
