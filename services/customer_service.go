package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-backend/auth"
	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Register creates a customer profile. userID, when non-zero, links the
// profile to an existing login account.
func (s *CustomerService) Register(name, email, phone string, userID uint) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", ErrValidation)
	}

	customer := models.Customer{Name: name, Email: email, Phone: phone}
	if userID != 0 {
		customer.UserID = &userID
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		return nil, translateDuplicate(err, "email")
	}
	return &customer, nil
}

// Login authenticates a customer by email + phone, the credential pair the
// system has always used for guests without a full account.
func (s *CustomerService) Login(email, phone string) (*models.Customer, string, error) {
	var customer models.Customer
	err := s.DB.Where("email = ? AND phone = ?", strings.TrimSpace(email), strings.TrimSpace(phone)).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("db error during customer login: %w", err)
	}

	token, err := auth.NewAccessToken(customer.ID, auth.RoleCustomer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &customer, token, nil
}

func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", id, err)
	}
	return &customer, nil
}

// Update applies name/email/phone changes. Owner or admin only.
func (s *CustomerService) Update(p auth.Principal, id uint, name, email, phone string) (*models.Customer, error) {
	if !p.IsAdmin() && p.CustomerID != id {
		return nil, fmt.Errorf("%w: not your profile", ErrForbidden)
	}

	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(name); v != "" {
		updates["name"] = v
	}
	if v := strings.TrimSpace(email); v != "" {
		updates["email"] = v
	}
	if v := strings.TrimSpace(phone); v != "" {
		updates["phone"] = v
	}
	if len(updates) > 0 {
		if err := s.DB.Model(customer).Updates(updates).Error; err != nil {
			return nil, translateDuplicate(err, "email")
		}
	}
	return customer, nil
}

// Delete removes a customer and cascades to its bookings and their payments,
// all in one transaction. Admin only.
func (s *CustomerService) Delete(p auth.Principal, id uint) error {
	if !p.IsAdmin() {
		return fmt.Errorf("%w: admin access required", ErrForbidden)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("db error loading customer %d: %w", id, err)
		}

		var bookingIDs []uint
		if err := tx.Model(&models.Booking{}).Where("customer_id = ?", id).
			Pluck("id", &bookingIDs).Error; err != nil {
			return fmt.Errorf("failed to collect bookings for customer %d: %w", id, err)
		}
		if len(bookingIDs) > 0 {
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&models.Payment{}).Error; err != nil {
				return fmt.Errorf("failed to delete payments for customer %d: %w", id, err)
			}
			if err := tx.Where("customer_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
				return fmt.Errorf("failed to delete bookings for customer %d: %w", id, err)
			}
		}
		if err := tx.Delete(&customer).Error; err != nil {
			return fmt.Errorf("failed to delete customer %d: %w", id, err)
		}
		return nil
	})
}

// ListAll returns every customer. Admin only.
func (s *CustomerService) ListAll(p auth.Principal) ([]models.Customer, error) {
	if !p.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", ErrForbidden)
	}
	var customers []models.Customer
	if err := s.DB.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	return customers, nil
}
