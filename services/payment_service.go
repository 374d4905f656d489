package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-backend/auth"
	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"gorm.io/gorm"
)

// PaymentService records the single payment for a booking and flips the
// booking's payment state. This is the only place payment rows are created;
// there is no partial payment or refund.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// PayResult reports the outcome of Pay. AlreadyPaid is true when the booking
// was paid before this call; Payment then holds the existing row.
type PayResult struct {
	Payment     *models.Payment `json:"payment"`
	AlreadyPaid bool            `json:"already_paid"`
	Nights      int             `json:"nights"`
}

// Pay charges price * nights against a confirmed booking. Paying an
// already-paid booking is reported as success without a second row.
func (s *PaymentService) Pay(p auth.Principal, bookingID uint, method string) (*PayResult, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		method = models.PaymentMethodOther
	}

	var result PayResult
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).Preload("Room").Preload("Customer").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("db error loading booking %d: %w", bookingID, err)
		}
		if !canAccessBooking(p, &booking) {
			return fmt.Errorf("%w: not your booking", ErrForbidden)
		}
		if booking.Status == models.BookingStatusCancelled {
			return fmt.Errorf("%w: booking is cancelled", ErrBookingNotPayable)
		}

		if booking.PaymentStatus == models.PaymentStatusPaid {
			var existing models.Payment
			if err := tx.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
				result.Payment = &existing
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("db error loading payment for booking %d: %w", booking.ID, err)
			}
			result.AlreadyPaid = true
			result.Nights = utils.Nights(booking.CheckIn, booking.CheckOut)
			return nil
		}

		nights := utils.Nights(booking.CheckIn, booking.CheckOut)
		payment := models.Payment{
			BookingID:   booking.ID,
			Amount:      booking.Room.Price * float64(nights),
			PaymentDate: utils.Today(),
			Method:      method,
		}
		// The unique index on booking_id backstops a pay race that slips
		// past the row lock.
		if err := tx.Create(&payment).Error; err != nil {
			return translateDuplicate(err, "payment for this booking")
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"payment_status": models.PaymentStatusPaid,
			"payment_method": method,
		}).Error; err != nil {
			return fmt.Errorf("failed to update booking %d payment state: %w", booking.ID, err)
		}

		result.Payment = &payment
		result.Nights = nights
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &result, nil
}

// ListByBooking returns the payments recorded for one booking. With the
// unique booking_id constraint this is zero or one row.
func (s *PaymentService) ListByBooking(p auth.Principal, bookingID uint) ([]models.Payment, error) {
	var booking models.Booking
	if err := s.DB.Preload("Customer").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("db error loading booking %d: %w", bookingID, err)
	}
	if !canAccessBooking(p, &booking) {
		return nil, fmt.Errorf("%w: not your booking", ErrForbidden)
	}

	var payments []models.Payment
	if err := s.DB.Where("booking_id = ?", bookingID).Order("id ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments for booking %d: %w", bookingID, err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}

// ListAll returns every payment. Admin only.
func (s *PaymentService) ListAll(p auth.Principal) ([]models.Payment, error) {
	if !p.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrForbidden)
	}
	var payments []models.Payment
	if err := s.DB.Order("id ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}
