package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-backend/auth"
	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: confirmed -> paid, or
// confirmed -> cancelled. Every mutation runs in one transaction.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewBookingService(db *gorm.DB, availability *AvailabilityService) *BookingService {
	return &BookingService{DB: db, Availability: availability}
}

// lockForUpdate adds a FOR UPDATE row lock on MySQL. SQLite has no row locks;
// its transactions serialize writers anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Create books roomID for customerID over [checkIn, checkOut). Non-admin
// principals may only book for their own customer profile.
func (s *BookingService) Create(p auth.Principal, customerID uint, roomID uint, checkIn, checkOut string) (*models.Booking, error) {
	ci, err := utils.ParseDate(checkIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in: %v", ErrValidation, err)
	}
	co, err := utils.ParseDate(checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out: %v", ErrValidation, err)
	}
	if !ci.Before(co) {
		return nil, ErrInvalidDateRange
	}
	if roomID == 0 {
		return nil, fmt.Errorf("%w: room_id is required", ErrValidation)
	}
	if !p.IsAdmin() && p.CustomerID != customerID {
		return nil, fmt.Errorf("%w: cannot book for another customer", ErrForbidden)
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("db error checking customer %d: %w", customerID, err)
		}

		// Lock the room row so two concurrent requests for the same room
		// cannot both pass the availability check before either commits.
		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("db error checking room %d: %w", roomID, err)
		}

		if _, err := s.Availability.CheckRoom(tx, &room, ci, co); err != nil {
			return err
		}

		booking = models.Booking{
			ReferenceCode: newReferenceCode(),
			CustomerID:    customerID,
			RoomID:        roomID,
			CheckIn:       ci,
			CheckOut:      co,
			Status:        models.BookingStatusConfirmed,
			PaymentStatus: models.PaymentStatusUnpaid,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return translateDuplicate(err, "booking")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room").Preload("Customer").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking %d: %w", booking.ID, err)
	}
	return &booking, nil
}

// Cancel moves a confirmed, unpaid booking to cancelled. Cancellation is
// closed once the check-in date has arrived; there is no refund path from paid.
func (s *BookingService) Cancel(p auth.Principal, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Preload("Customer").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("db error loading booking %d: %w", bookingID, err)
		}
		if !canAccessBooking(p, &booking) {
			return fmt.Errorf("%w: not your booking", ErrForbidden)
		}
		if booking.Status == models.BookingStatusCancelled {
			return ErrAlreadyCancelled
		}
		if booking.PaymentStatus == models.PaymentStatusPaid {
			return fmt.Errorf("%w: paid bookings cannot be cancelled", ErrInvalidState)
		}
		if !utils.Today().Before(booking.CheckIn) {
			return ErrTooLateToCancel
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking %d: %w", bookingID, err)
		}
		booking.Status = models.BookingStatusCancelled
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// Get returns one booking with its room and customer. Owner or admin only.
func (s *BookingService) Get(p auth.Principal, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", bookingID, err)
	}
	if !canAccessBooking(p, &booking) {
		return nil, fmt.Errorf("%w: not your booking", ErrForbidden)
	}
	return &booking, nil
}

// BookingFilter narrows List. Zero values mean "no filter".
type BookingFilter struct {
	CustomerID uint
	RoomType   string
	From       string // check_in >= From
	To         string // check_out <= To
	Page       int
	PerPage    int
}

// BookingPage is one page of bookings, ordered by id ascending.
type BookingPage struct {
	Items   []models.Booking `json:"items"`
	Total   int64            `json:"total"`
	Pages   int              `json:"pages"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// List returns bookings visible to the principal. Non-admin callers are always
// scoped to their own customer profile regardless of the filter.
func (s *BookingService) List(p auth.Principal, filter BookingFilter) (*BookingPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	query := s.DB.Model(&models.Booking{})
	if !p.IsAdmin() {
		query = query.Where("customer_id = ?", p.CustomerID)
	} else if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}

	if t := strings.TrimSpace(filter.RoomType); t != "" {
		query = query.Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Where("rooms.type = ?", t)
	}
	if filter.From != "" {
		from, err := utils.ParseDate(filter.From)
		if err != nil {
			return nil, fmt.Errorf("%w: from: %v", ErrValidation, err)
		}
		query = query.Where("bookings.check_in >= ?", from)
	}
	if filter.To != "" {
		to, err := utils.ParseDate(filter.To)
		if err != nil {
			return nil, fmt.Errorf("%w: to: %v", ErrValidation, err)
		}
		query = query.Where("bookings.check_out <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	var items []models.Booking
	if err := query.
		Preload("Room").
		Preload("Customer").
		Order("bookings.id ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if items == nil {
		items = []models.Booking{}
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return &BookingPage{Items: items, Total: total, Pages: pages, Page: page, PerPage: perPage}, nil
}

// canAccessBooking: owner (by customer profile or linked user) or admin.
func canAccessBooking(p auth.Principal, b *models.Booking) bool {
	if p.IsAdmin() {
		return true
	}
	if p.CustomerID != 0 && p.CustomerID == b.CustomerID {
		return true
	}
	if p.UserID != 0 && b.Customer.UserID != nil && *b.Customer.UserID == p.UserID {
		return true
	}
	return false
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
